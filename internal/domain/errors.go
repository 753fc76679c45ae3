package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the deployment workflow
var (
	// ErrProvider is matched by every ProviderError
	ErrProvider = errors.New("provider error")

	// ErrDeployment is matched by every DeploymentError
	ErrDeployment = errors.New("deployment error")

	// ErrConfirmation is matched by every ConfirmationError
	ErrConfirmation = errors.New("confirmation error")

	// ErrCall is matched by every CallError
	ErrCall = errors.New("call error")

	// ErrContractNotFound is returned when no artifact exists for a contract name
	ErrContractNotFound = errors.New("contract not found")

	// ErrConfirmationTimeout is returned when a transaction is not mined in time
	ErrConfirmationTimeout = errors.New("confirmation timeout")

	// ErrTransactionReverted is returned when a mined transaction has failed status
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrInvalidPlan is returned when a deployment plan fails validation
	ErrInvalidPlan = errors.New("invalid deployment plan")

	// ErrPlanNotFound is returned for an unknown built-in plan name
	ErrPlanNotFound = errors.New("plan not found")

	// ErrCancelled is returned when the operator declines to broadcast
	ErrCancelled = errors.New("deployment cancelled")
)

// ProviderError is returned when the contract provider cannot supply a
// factory: the artifact is missing or the node is unreachable.
type ProviderError struct {
	Contract string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Contract == "" {
		return fmt.Sprintf("provider error: %v", e.Err)
	}
	return fmt.Sprintf("provider error for %s: %v", e.Contract, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) Is(target error) bool { return target == ErrProvider }

// DeploymentError is returned when the deployment transaction is rejected
type DeploymentError struct {
	Contract string
	Err      error
}

func (e *DeploymentError) Error() string {
	return fmt.Sprintf("failed to deploy %s: %v", e.Contract, e.Err)
}

func (e *DeploymentError) Unwrap() error { return e.Err }

func (e *DeploymentError) Is(target error) bool { return target == ErrDeployment }

// ConfirmationError is returned when a submitted transaction is not
// confirmed, or is mined with failed status.
type ConfirmationError struct {
	Step   string
	TxHash string
	Err    error
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("%s transaction %s not confirmed: %v", e.Step, e.TxHash, e.Err)
}

func (e *ConfirmationError) Unwrap() error { return e.Err }

func (e *ConfirmationError) Is(target error) bool { return target == ErrConfirmation }

// CallError is returned when a post-deployment call fails
type CallError struct {
	Method string
	Err    error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("call %s failed: %v", e.Method, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

func (e *CallError) Is(target error) bool { return target == ErrCall }
