package usecase

import (
	"context"
	"fmt"

	"github.com/givables-xyz/givables-deploy/internal/domain"
)

// ResolvePlan picks the plan to run: the plan file when one is given,
// otherwise the named built-in plan.
type ResolvePlan struct {
	loader PlanLoader
}

// NewResolvePlan creates a new ResolvePlan use case
func NewResolvePlan(loader PlanLoader) *ResolvePlan {
	return &ResolvePlan{loader: loader}
}

// Run returns the plan for a name and optional plan file
func (uc *ResolvePlan) Run(ctx context.Context, name, planFile string) (domain.DeploymentPlan, error) {
	if planFile != "" {
		if name != "" {
			return domain.DeploymentPlan{}, fmt.Errorf("a plan name and --plan-file cannot be combined")
		}
		return uc.loader.LoadPlan(planFile)
	}
	if name == "" {
		name = domain.DefaultPlanName
	}
	return domain.BuiltinPlan(name)
}
