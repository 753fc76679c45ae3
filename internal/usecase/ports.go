package usecase

import (
	"context"

	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
)

// ContractProvider is the blockchain toolchain the deployment runner drives.
// Every method blocks until the node answers.
type ContractProvider interface {
	// GetFactory returns a deployable factory for the named contract
	GetFactory(ctx context.Context, contractName string) (*domain.ContractFactory, error)
	// Deploy submits a deployment transaction with ordered constructor arguments
	Deploy(ctx context.Context, factory *domain.ContractFactory, args []string) (*domain.PendingTx, error)
	// WaitForConfirmation blocks until the transaction is mined
	WaitForConfirmation(ctx context.Context, tx *domain.PendingTx) (*domain.Receipt, error)
	// Call invokes a named method. State-mutating methods return a pending
	// transaction, read-only methods return their value.
	Call(ctx context.Context, contract *domain.ContractHandle, step domain.CallStep) (*domain.CallResult, error)
}

// ChainInfo reports what the provider is connected to
type ChainInfo interface {
	ChainID(ctx context.Context) (uint64, error)
}

// ArtifactRepository finds compiled contracts
type ArtifactRepository interface {
	FindArtifact(ctx context.Context, contractName string) (*domain.ContractArtifact, error)
}

// RunStore persists the reports of completed runs
type RunStore interface {
	SaveRun(ctx context.Context, report *domain.RunReport) error
	ListRuns(ctx context.Context, filter domain.RunFilter) ([]*domain.RunReport, error)
}

// BroadcastConfirmer asks the operator before transactions are sent
type BroadcastConfirmer interface {
	ConfirmBroadcast(ctx context.Context, plan domain.DeploymentPlan, network *config.Network) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// PlanSelector lets the operator pick a plan interactively
type PlanSelector interface {
	SelectPlan(ctx context.Context, plans []domain.DeploymentPlan, prompt string) (domain.DeploymentPlan, error)
}
