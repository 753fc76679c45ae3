package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
)

// Backend is the subset of an Ethereum client the provider needs.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// DialFunc opens a backend for an rpc url
type DialFunc func(ctx context.Context, rpcURL string) (Backend, error)

func dialEthclient(ctx context.Context, rpcURL string) (Backend, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// EthProvider implements usecase.ContractProvider against a JSON-RPC node
type EthProvider struct {
	cfg       *config.RuntimeConfig
	artifacts usecase.ArtifactRepository
	log       *slog.Logger
	dial      DialFunc

	mu      sync.Mutex
	backend Backend
	chainID *big.Int
	key     *ecdsa.PrivateKey
}

// NewEthProvider creates a provider that connects on first use
func NewEthProvider(cfg *config.RuntimeConfig, artifacts usecase.ArtifactRepository, log *slog.Logger) *EthProvider {
	return &EthProvider{
		cfg:       cfg,
		artifacts: artifacts,
		log:       log,
		dial:      dialEthclient,
	}
}

// WithDialer replaces the function used to reach the node
func (p *EthProvider) WithDialer(dial DialFunc) *EthProvider {
	p.dial = dial
	return p
}

// connect dials the node once and verifies the chain id matches the
// configured network
func (p *EthProvider) connect(ctx context.Context) (Backend, *big.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.backend != nil {
		return p.backend, p.chainID, nil
	}

	if p.cfg.Network == nil || p.cfg.Network.RPCURL == "" {
		return nil, nil, &domain.ProviderError{Err: errors.New("no rpc url configured")}
	}

	backend, err := p.dial(ctx, p.cfg.Network.RPCURL)
	if err != nil {
		return nil, nil, &domain.ProviderError{Err: fmt.Errorf("failed to connect to RPC: %w", err)}
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, nil, &domain.ProviderError{Err: fmt.Errorf("failed to get chain ID from %s: %w", p.cfg.Network.Name, err)}
	}

	if expected := p.cfg.Network.ChainID; expected != 0 && chainID.Uint64() != expected {
		return nil, nil, &domain.ProviderError{Err: fmt.Errorf("chain ID mismatch: expected %d, got %d", expected, chainID.Uint64())}
	}

	p.log.Debug("connected to node", "network", p.cfg.Network.Name, "chain_id", chainID.Uint64())
	p.backend = backend
	p.chainID = chainID
	return backend, chainID, nil
}

// transactor builds fresh signing options for each transaction
func (p *EthProvider) transactor(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.key == nil {
		raw := strings.TrimPrefix(strings.TrimSpace(p.cfg.PrivateKey), "0x")
		if raw == "" {
			return nil, &domain.ProviderError{Err: errors.New("no signer configured (set PRIVATE_KEY)")}
		}
		key, err := crypto.HexToECDSA(raw)
		if err != nil {
			return nil, &domain.ProviderError{Err: errors.New("PRIVATE_KEY is not a valid secp256k1 key")}
		}
		p.key = key
	}

	opts, err := bind.NewKeyedTransactorWithChainID(p.key, chainID)
	if err != nil {
		return nil, &domain.ProviderError{Err: fmt.Errorf("failed to create transactor: %w", err)}
	}
	opts.Context = ctx
	return opts, nil
}

// ChainID reports the chain the node is on
func (p *EthProvider) ChainID(ctx context.Context) (uint64, error) {
	_, chainID, err := p.connect(ctx)
	if err != nil {
		return 0, err
	}
	return chainID.Uint64(), nil
}

// GetFactory loads the compiled artifact and checks the node is reachable
func (p *EthProvider) GetFactory(ctx context.Context, contractName string) (*domain.ContractFactory, error) {
	artifact, err := p.artifacts.FindArtifact(ctx, contractName)
	if err != nil {
		return nil, &domain.ProviderError{Contract: contractName, Err: err}
	}

	if _, _, err := p.connect(ctx); err != nil {
		return nil, err
	}

	return &domain.ContractFactory{
		Name:     artifact.Name,
		ABI:      artifact.ABI,
		Bytecode: artifact.Bytecode,
		Artifact: artifact.Path,
	}, nil
}

// Deploy submits the deployment transaction without waiting for it
func (p *EthProvider) Deploy(ctx context.Context, factory *domain.ContractFactory, args []string) (*domain.PendingTx, error) {
	backend, chainID, err := p.connect(ctx)
	if err != nil {
		return nil, err
	}

	params, err := coerceArgs(factory.ABI.Constructor.Inputs, args)
	if err != nil {
		return nil, &domain.DeploymentError{Contract: factory.Name, Err: fmt.Errorf("constructor: %w", err)}
	}

	opts, err := p.transactor(ctx, chainID)
	if err != nil {
		return nil, err
	}

	address, tx, _, err := bind.DeployContract(opts, factory.ABI, factory.Bytecode, backend, params...)
	if err != nil {
		return nil, &domain.DeploymentError{Contract: factory.Name, Err: err}
	}

	p.log.Debug("deployment submitted", "contract", factory.Name, "tx", tx.Hash().Hex(), "address", address.Hex())
	return &domain.PendingTx{Hash: tx.Hash(), ContractAddress: &address, Tx: tx}, nil
}

// WaitForConfirmation blocks until the transaction is mined or the
// confirmation timeout passes
func (p *EthProvider) WaitForConfirmation(ctx context.Context, pending *domain.PendingTx) (*domain.Receipt, error) {
	if pending == nil || pending.Tx == nil {
		return nil, &domain.ConfirmationError{Err: errors.New("no transaction to wait for")}
	}

	backend, _, err := p.connect(ctx)
	if err != nil {
		return nil, err
	}

	waitCtx := ctx
	if p.cfg.ConfirmationTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, p.cfg.ConfirmationTimeout)
		defer cancel()
	}

	receipt, err := bind.WaitMined(waitCtx, backend, pending.Tx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w after %s", domain.ErrConfirmationTimeout, p.cfg.ConfirmationTimeout)
		}
		return nil, err
	}

	result := &domain.Receipt{
		TxHash:          receipt.TxHash,
		GasUsed:         receipt.GasUsed,
		Status:          domain.ReceiptStatusSuccess,
		ContractAddress: receipt.ContractAddress,
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		result.Status = domain.ReceiptStatusReverted
		return result, nil
	}

	if pending.ContractAddress != nil {
		code, err := backend.CodeAt(ctx, *pending.ContractAddress, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to check code at %s: %w", pending.ContractAddress.Hex(), err)
		}
		if len(code) == 0 {
			return nil, fmt.Errorf("no code at %s after deployment", pending.ContractAddress.Hex())
		}
	}

	return result, nil
}

// Call sends a transaction for state-mutating methods and performs an
// eth_call for view and pure methods
func (p *EthProvider) Call(ctx context.Context, contract *domain.ContractHandle, step domain.CallStep) (*domain.CallResult, error) {
	if contract == nil {
		return nil, &domain.CallError{Method: step.Method, Err: errors.New("no deployed contract")}
	}

	method, ok := contract.ABI.Methods[step.Method]
	if !ok {
		return nil, &domain.CallError{Method: step.Method, Err: fmt.Errorf("method not found in %s ABI", contract.Name)}
	}

	params, err := coerceArgs(method.Inputs, step.Args)
	if err != nil {
		return nil, &domain.CallError{Method: step.Method, Err: err}
	}

	backend, chainID, err := p.connect(ctx)
	if err != nil {
		return nil, err
	}

	bound := bind.NewBoundContract(contract.Address, contract.ABI, backend, backend, backend)

	if method.IsConstant() {
		var out []interface{}
		if err := bound.Call(&bind.CallOpts{Context: ctx}, &out, step.Method, params...); err != nil {
			return nil, &domain.CallError{Method: step.Method, Err: err}
		}
		return &domain.CallResult{Value: formatOutputs(out)}, nil
	}

	opts, err := p.transactor(ctx, chainID)
	if err != nil {
		return nil, err
	}

	tx, err := bound.Transact(opts, step.Method, params...)
	if err != nil {
		return nil, &domain.CallError{Method: step.Method, Err: err}
	}

	p.log.Debug("transaction submitted", "method", step.Method, "tx", tx.Hash().Hex())
	return &domain.CallResult{Tx: &domain.PendingTx{Hash: tx.Hash(), Tx: tx}}, nil
}

// Ensure the provider implements the interfaces
var (
	_ usecase.ContractProvider = (*EthProvider)(nil)
	_ usecase.ChainInfo        = (*EthProvider)(nil)
)
