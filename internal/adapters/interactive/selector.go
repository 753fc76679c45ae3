package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectPlan selects a plan from a list
func (s *SelectorAdapter) SelectPlan(ctx context.Context, plans []domain.DeploymentPlan, prompt string) (domain.DeploymentPlan, error) {
	if s.config.NonInteractive {
		return domain.DeploymentPlan{}, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(plans) == 0 {
		return domain.DeploymentPlan{}, fmt.Errorf("no plans provided for selection")
	}

	if len(plans) == 1 {
		return plans[0], nil
	}

	options := formatPlanOptions(plans)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     options,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return domain.DeploymentPlan{}, fmt.Errorf("selection cancelled: %w", err)
	}

	return plans[index], nil
}

// formatPlanOptions creates display strings like "givables-update (Givables, 2 updates)"
func formatPlanOptions(plans []domain.DeploymentPlan) []string {
	options := make([]string, len(plans))
	for i, plan := range plans {
		name := color.New(color.FgWhite, color.Bold).Sprint(plan.Name)
		detail := plan.Contract
		if n := len(plan.Updates); n > 0 {
			detail = fmt.Sprintf("%s, %d update%s", detail, n, plural(n))
		}
		options[i] = fmt.Sprintf("%s (%s)", name, color.New(color.FgBlue).Sprint(detail))
	}
	return options
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.PlanSelector = (*SelectorAdapter)(nil)
