package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CallStep is a named contract call with string arguments. Arguments are
// coerced to the ABI input types of the method when the call is issued.
type CallStep struct {
	Method string   `json:"method" yaml:"method" toml:"method"`
	Args   []string `json:"args,omitempty" yaml:"args,omitempty" toml:"args"`
}

// String renders the step as method(arg, ...)
func (s CallStep) String() string {
	out := s.Method + "("
	for i, arg := range s.Args {
		if i > 0 {
			out += ", "
		}
		out += arg
	}
	return out + ")"
}

// DeploymentPlan describes one deploy-mint-read workflow.
type DeploymentPlan struct {
	Name            string     `json:"name" yaml:"name" toml:"name"`
	Description     string     `json:"description,omitempty" yaml:"description,omitempty" toml:"description"`
	Contract        string     `json:"contract" yaml:"contract" toml:"contract"`
	ConstructorArgs []string   `json:"constructorArgs" yaml:"constructor_args" toml:"constructor_args"`
	Mint            CallStep   `json:"mint" yaml:"mint" toml:"mint"`
	Read            CallStep   `json:"read" yaml:"read" toml:"read"`
	Updates         []CallStep `json:"updates,omitempty" yaml:"updates,omitempty" toml:"updates"`
}

// ContractArtifact is a compiled contract as found on disk
type ContractArtifact struct {
	Name     string
	Path     string
	ABI      abi.ABI
	Bytecode []byte
}

// ContractFactory can deploy new instances of a contract
type ContractFactory struct {
	Name     string
	ABI      abi.ABI
	Bytecode []byte
	Artifact string
}

// ContractHandle references a deployed contract instance
type ContractHandle struct {
	Name    string
	Address common.Address
	ABI     abi.ABI
}

// PendingTx is a submitted transaction that has not been confirmed yet.
// ContractAddress is set for deployment transactions.
type PendingTx struct {
	Hash            common.Hash
	ContractAddress *common.Address
	Tx              *types.Transaction
}

// ReceiptStatus mirrors the execution status reported in a receipt
type ReceiptStatus string

const (
	ReceiptStatusSuccess  ReceiptStatus = "SUCCESS"
	ReceiptStatusReverted ReceiptStatus = "REVERTED"
)

// Receipt is the confirmation of a mined transaction
type Receipt struct {
	TxHash          common.Hash
	BlockNumber     uint64
	GasUsed         uint64
	Status          ReceiptStatus
	ContractAddress common.Address
}

// CallResult is the outcome of a contract call. Exactly one of Tx and
// Value is meaningful: Tx for state-mutating methods, Value for reads.
type CallResult struct {
	Tx    *PendingTx
	Value string
}

// IsTransaction reports whether the call produced a transaction
func (r *CallResult) IsTransaction() bool {
	return r != nil && r.Tx != nil
}

// StepKind classifies a recorded step
type StepKind string

const (
	StepKindDeploy StepKind = "deploy"
	StepKindMint   StepKind = "mint"
	StepKindUpdate StepKind = "update"
	StepKindRead   StepKind = "read"
)

// StepRecord is one completed step of a run
type StepRecord struct {
	Kind        StepKind      `json:"kind" yaml:"kind"`
	Method      string        `json:"method,omitempty" yaml:"method,omitempty"`
	Args        []string      `json:"args,omitempty" yaml:"args,omitempty"`
	TxHash      string        `json:"txHash,omitempty" yaml:"tx_hash,omitempty"`
	BlockNumber uint64        `json:"blockNumber,omitempty" yaml:"block_number,omitempty"`
	GasUsed     uint64        `json:"gasUsed,omitempty" yaml:"gas_used,omitempty"`
	Status      ReceiptStatus `json:"status,omitempty" yaml:"status,omitempty"`
	Value       string        `json:"value,omitempty" yaml:"value,omitempty"`
}

// RunReport summarizes a completed deployment run
type RunReport struct {
	ID              string       `json:"id" yaml:"id"`
	Plan            string       `json:"plan" yaml:"plan"`
	Network         string       `json:"network" yaml:"network"`
	ChainID         uint64       `json:"chainId,omitempty" yaml:"chain_id,omitempty"`
	Contract        string       `json:"contract" yaml:"contract"`
	ContractAddress string       `json:"contractAddress" yaml:"contract_address"`
	Steps           []StepRecord `json:"steps" yaml:"steps"`
	Reads           []string     `json:"reads" yaml:"reads"`
	StartedAt       time.Time    `json:"startedAt" yaml:"started_at"`
	FinishedAt      time.Time    `json:"finishedAt" yaml:"finished_at"`
}

// RunFilter selects stored run reports. Empty fields match everything.
type RunFilter struct {
	Network string
	Plan    string
}
