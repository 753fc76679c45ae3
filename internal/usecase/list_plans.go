package usecase

import (
	"context"
	"fmt"

	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/samber/lo"
)

// PlanLoader loads a deployment plan from a file
type PlanLoader interface {
	LoadPlan(path string) (domain.DeploymentPlan, error)
}

// ListPlansParams contains parameters for listing plans
type ListPlansParams struct {
	PlanFile string
}

// ListPlansResult contains the plans available to deploy
type ListPlansResult struct {
	Plans []domain.DeploymentPlan
}

// ListPlans lists the built-in plans and an optional plan file
type ListPlans struct {
	loader PlanLoader
}

// NewListPlans creates a new ListPlans use case
func NewListPlans(loader PlanLoader) *ListPlans {
	return &ListPlans{loader: loader}
}

// Run executes the use case
func (uc *ListPlans) Run(ctx context.Context, params ListPlansParams) (*ListPlansResult, error) {
	plans := lo.Map(domain.BuiltinPlanNames(), func(name string, _ int) domain.DeploymentPlan {
		plan, _ := domain.BuiltinPlan(name)
		return plan
	})

	if params.PlanFile != "" {
		plan, err := uc.loader.LoadPlan(params.PlanFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load plan file: %w", err)
		}
		plans = append(plans, plan)
	}

	return &ListPlansResult{Plans: plans}, nil
}
