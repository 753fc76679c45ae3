package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/manifoldco/promptui"
)

// PromptFunc asks a yes/no question
type PromptFunc func(label string) (bool, error)

// ConfirmerAdapter asks before broadcasting to a non-local network
type ConfirmerAdapter struct {
	config *config.RuntimeConfig
	out    io.Writer
	prompt PromptFunc
}

// NewConfirmerAdapter creates a confirmer that prompts on the terminal
func NewConfirmerAdapter(cfg *config.RuntimeConfig) *ConfirmerAdapter {
	return &ConfirmerAdapter{
		config: cfg,
		out:    os.Stderr,
		prompt: promptConfirm,
	}
}

// ConfirmBroadcast shows what is about to be sent and asks to continue.
// Local networks and --yes skip the prompt.
func (c *ConfirmerAdapter) ConfirmBroadcast(ctx context.Context, plan domain.DeploymentPlan, network *config.Network) (bool, error) {
	if c.config.AutoApprove || network.IsLocal() {
		return true, nil
	}

	if c.config.NonInteractive {
		return false, fmt.Errorf("refusing to broadcast to %s in non-interactive mode without --yes", network.Name)
	}

	c.printSummary(plan, network)

	return c.prompt(fmt.Sprintf("Broadcast %s to %s", plan.Name, network.Name))
}

func (c *ConfirmerAdapter) printSummary(plan domain.DeploymentPlan, network *config.Network) {
	bold := color.New(color.Bold)
	label := color.New(color.FgCyan)

	fmt.Fprintln(c.out)
	bold.Fprintf(c.out, "About to broadcast plan %s\n", plan.Name)
	fmt.Fprintf(c.out, "  %s %s", label.Sprint("Network:"), network.Name)
	if network.ChainID != 0 {
		fmt.Fprintf(c.out, " (chain %d)", network.ChainID)
	}
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "  %s %s(%d args)\n", label.Sprint("Deploy: "), plan.Contract, len(plan.ConstructorArgs))
	fmt.Fprintf(c.out, "  %s %s\n", label.Sprint("Mint:   "), plan.Mint)
	for _, step := range plan.Updates {
		fmt.Fprintf(c.out, "  %s %s\n", label.Sprint("Update: "), step)
	}
	fmt.Fprintln(c.out)
}

func promptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return true, nil
}

// Ensure the adapter implements the interface
var _ usecase.BroadcastConfirmer = (*ConfirmerAdapter)(nil)
