package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{"provider", &ProviderError{Contract: "Givables", Err: cause}, ErrProvider, "provider error for Givables: boom"},
		{"provider without contract", &ProviderError{Err: cause}, ErrProvider, "provider error: boom"},
		{"deployment", &DeploymentError{Contract: "Givables", Err: cause}, ErrDeployment, "failed to deploy Givables: boom"},
		{"confirmation", &ConfirmationError{Step: "mint", TxHash: "0xabc", Err: ErrTransactionReverted}, ErrConfirmation, "mint transaction 0xabc not confirmed: transaction reverted"},
		{"call", &CallError{Method: "adminIssueToken", Err: cause}, ErrCall, "call adminIssueToken failed: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("run: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
			assert.Equal(t, tt.contains, tt.err.Error())
		})
	}

	t.Run("causes stay reachable", func(t *testing.T) {
		err := fmt.Errorf("run: %w", &ConfirmationError{Step: "deploy", Err: ErrConfirmationTimeout})
		assert.True(t, errors.Is(err, ErrConfirmationTimeout))
		assert.False(t, errors.Is(err, ErrCall))

		var confErr *ConfirmationError
		assert.True(t, errors.As(err, &confErr))
		assert.Equal(t, "deploy", confErr.Step)
	})
}
