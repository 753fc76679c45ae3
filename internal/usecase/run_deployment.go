package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
)

// RunDeploymentParams contains parameters for a deployment run
type RunDeploymentParams struct {
	Plan domain.DeploymentPlan
}

// RunDeploymentResult contains the result of a completed run
type RunDeploymentResult struct {
	Report *domain.RunReport
}

// RunDeployment deploys a contract and drives the mint, read and update
// calls of a plan against it, one remote call at a time.
type RunDeployment struct {
	config    *config.RuntimeConfig
	provider  ContractProvider
	confirmer BroadcastConfirmer
	store     RunStore
	progress  ProgressSink
	log       *slog.Logger
	now       func() time.Time
}

// NewRunDeployment creates a new RunDeployment use case
func NewRunDeployment(
	cfg *config.RuntimeConfig,
	provider ContractProvider,
	confirmer BroadcastConfirmer,
	store RunStore,
	progress ProgressSink,
	log *slog.Logger,
) *RunDeployment {
	return &RunDeployment{
		config:    cfg,
		provider:  provider,
		confirmer: confirmer,
		store:     store,
		progress:  progress,
		log:       log,
		now:       time.Now,
	}
}

// Run executes the plan. Any failure aborts the run and is returned as one
// of the domain error types; no retries are attempted.
func (uc *RunDeployment) Run(ctx context.Context, params RunDeploymentParams) (*RunDeploymentResult, error) {
	plan := params.Plan.Clone()
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	if uc.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.config.Timeout)
		defer cancel()
	}

	run := &deploymentRun{
		uc:   uc,
		plan: plan,
		// factory, deploy, mint, read, then one per update plus the final read
		total: 4 + len(plan.Updates) + min(len(plan.Updates), 1),
		report: &domain.RunReport{
			ID:        uuid.NewString(),
			Plan:      plan.Name,
			Network:   uc.config.Network.Name,
			ChainID:   uc.config.Network.ChainID,
			Contract:  plan.Contract,
			StartedAt: uc.now(),
		},
	}

	err := run.execute(ctx)
	run.finish(ctx, err)
	if err != nil {
		uc.log.Debug("deployment run aborted", "plan", plan.Name, "error", err)
		return nil, err
	}

	run.report.FinishedAt = uc.now()

	// A failed save does not fail the run
	if err := uc.store.SaveRun(ctx, run.report); err != nil {
		uc.log.Warn("failed to record run", "id", run.report.ID, "error", err)
		uc.progress.Error(fmt.Sprintf("Warning: run not recorded: %v", err))
	}

	return &RunDeploymentResult{Report: run.report}, nil
}

// deploymentRun holds the state of a single Run invocation
type deploymentRun struct {
	uc      *RunDeployment
	plan    domain.DeploymentPlan
	report  *domain.RunReport
	handle  *domain.ContractHandle
	current int
	total   int
}

func (r *deploymentRun) execute(ctx context.Context) error {
	factory, err := r.getFactory(ctx)
	if err != nil {
		return err
	}

	if info, ok := r.uc.provider.(ChainInfo); ok {
		chainID, err := info.ChainID(ctx)
		if err != nil {
			return &domain.ProviderError{Contract: r.plan.Contract, Err: err}
		}
		r.report.ChainID = chainID
	}

	ok, err := r.uc.confirmer.ConfirmBroadcast(ctx, r.plan, r.uc.config.Network)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCancelled
	}

	if err := r.deploy(ctx, factory); err != nil {
		return err
	}

	if err := r.transact(ctx, domain.StepKindMint, r.plan.Mint); err != nil {
		return err
	}

	if err := r.read(ctx, r.plan.Read); err != nil {
		return err
	}

	if len(r.plan.Updates) == 0 {
		return nil
	}

	for _, step := range r.plan.Updates {
		if err := r.transact(ctx, domain.StepKindUpdate, step); err != nil {
			return err
		}
	}

	return r.read(ctx, r.plan.Read)
}

func (r *deploymentRun) getFactory(ctx context.Context) (*domain.ContractFactory, error) {
	r.stage(ctx, "factory", fmt.Sprintf("Loading %s artifact", r.plan.Contract))

	factory, err := r.uc.provider.GetFactory(ctx, r.plan.Contract)
	if err != nil {
		return nil, classify(err, func(err error) error {
			return &domain.ProviderError{Contract: r.plan.Contract, Err: err}
		})
	}

	r.uc.log.Debug("contract factory ready", "contract", factory.Name, "artifact", factory.Artifact)
	return factory, nil
}

func (r *deploymentRun) deploy(ctx context.Context, factory *domain.ContractFactory) error {
	r.stage(ctx, "deploy", fmt.Sprintf("Deploying %s", r.plan.Contract))

	pending, err := r.uc.provider.Deploy(ctx, factory, r.plan.ConstructorArgs)
	if err != nil {
		return classify(err, func(err error) error {
			return &domain.DeploymentError{Contract: r.plan.Contract, Err: err}
		})
	}
	if pending == nil || pending.ContractAddress == nil {
		return &domain.DeploymentError{Contract: r.plan.Contract, Err: errors.New("provider returned no contract address")}
	}

	receipt, err := r.confirm(ctx, "deploy", pending)
	if err != nil {
		return err
	}

	address := *pending.ContractAddress
	if receipt.ContractAddress != (common.Address{}) {
		address = receipt.ContractAddress
	}

	r.handle = &domain.ContractHandle{
		Name:    factory.Name,
		Address: address,
		ABI:     factory.ABI,
	}
	r.report.ContractAddress = address.Hex()
	r.record(domain.StepRecord{Kind: domain.StepKindDeploy, Args: r.plan.ConstructorArgs}, receipt)

	r.uc.progress.Info(fmt.Sprintf("Contract deployed to: %s", address.Hex()))
	return nil
}

// transact issues a state-mutating call and waits for it to be mined
func (r *deploymentRun) transact(ctx context.Context, kind domain.StepKind, step domain.CallStep) error {
	r.stage(ctx, string(kind), fmt.Sprintf("Calling %s", step))

	result, err := r.uc.provider.Call(ctx, r.handle, step)
	if err != nil {
		return classify(err, func(err error) error {
			return &domain.CallError{Method: step.Method, Err: err}
		})
	}
	if !result.IsTransaction() {
		return &domain.CallError{Method: step.Method, Err: errors.New("method is read-only, expected a transaction")}
	}

	receipt, err := r.confirm(ctx, step.Method, result.Tx)
	if err != nil {
		return err
	}

	r.record(domain.StepRecord{Kind: kind, Method: step.Method, Args: step.Args}, receipt)
	return nil
}

// read issues a read-only call and surfaces its value unmodified
func (r *deploymentRun) read(ctx context.Context, step domain.CallStep) error {
	r.stage(ctx, string(domain.StepKindRead), fmt.Sprintf("Reading %s", step))

	result, err := r.uc.provider.Call(ctx, r.handle, step)
	if err != nil {
		return classify(err, func(err error) error {
			return &domain.CallError{Method: step.Method, Err: err}
		})
	}
	if result == nil {
		return &domain.CallError{Method: step.Method, Err: errors.New("provider returned no result")}
	}
	if result.IsTransaction() {
		return &domain.CallError{Method: step.Method, Err: fmt.Errorf("method is not read-only (sent %s)", result.Tx.Hash.Hex())}
	}

	r.report.Reads = append(r.report.Reads, result.Value)
	r.report.Steps = append(r.report.Steps, domain.StepRecord{
		Kind:   domain.StepKindRead,
		Method: step.Method,
		Args:   step.Args,
		Value:  result.Value,
	})

	r.uc.progress.Info(result.Value)
	return nil
}

// confirm waits for a transaction and enforces the receipt status
func (r *deploymentRun) confirm(ctx context.Context, step string, tx *domain.PendingTx) (*domain.Receipt, error) {
	r.uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "confirm",
		Current: r.current,
		Total:   r.total,
		Message: fmt.Sprintf("Waiting for %s transaction %s", step, tx.Hash.Hex()),
		Spinner: true,
	})

	receipt, err := r.uc.provider.WaitForConfirmation(ctx, tx)
	if err != nil {
		return nil, classify(err, func(err error) error {
			return &domain.ConfirmationError{Step: step, TxHash: tx.Hash.Hex(), Err: err}
		})
	}

	if receipt.Status == domain.ReceiptStatusReverted {
		if !r.uc.config.AllowReverted {
			return nil, &domain.ConfirmationError{Step: step, TxHash: tx.Hash.Hex(), Err: domain.ErrTransactionReverted}
		}
		r.uc.log.Warn("transaction mined with failed status", "step", step, "tx", tx.Hash.Hex(), "block", receipt.BlockNumber)
	}

	r.uc.log.Debug("transaction confirmed", "step", step, "tx", tx.Hash.Hex(), "block", receipt.BlockNumber, "gas", receipt.GasUsed)
	return receipt, nil
}

func (r *deploymentRun) record(step domain.StepRecord, receipt *domain.Receipt) {
	step.TxHash = receipt.TxHash.Hex()
	step.BlockNumber = receipt.BlockNumber
	step.GasUsed = receipt.GasUsed
	step.Status = receipt.Status
	r.report.Steps = append(r.report.Steps, step)
}

// finish stops any running spinner
func (r *deploymentRun) finish(ctx context.Context, err error) {
	message := fmt.Sprintf("%s run complete", r.plan.Name)
	if err != nil {
		message = fmt.Sprintf("%s run aborted", r.plan.Name)
	}
	r.uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "done",
		Current: r.current,
		Total:   r.total,
		Message: message,
	})
}

func (r *deploymentRun) stage(ctx context.Context, stage, message string) {
	r.current++
	r.uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   stage,
		Current: r.current,
		Total:   r.total,
		Message: message,
		Spinner: true,
	})
}

// classify keeps errors the provider already typed and wraps the rest
func classify(err error, wrap func(error) error) error {
	for _, kind := range []error{domain.ErrProvider, domain.ErrDeployment, domain.ErrConfirmation, domain.ErrCall} {
		if errors.Is(err, kind) {
			return err
		}
	}
	return wrap(err)
}
