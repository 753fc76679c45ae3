package usecase

import (
	"context"
	"sort"

	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
)

// ListRunsParams contains parameters for listing recorded runs
type ListRunsParams struct {
	Plan string
	// AllNetworks lists runs on every network instead of the active one
	AllNetworks bool
	Limit       int
}

// ListRunsResult contains recorded runs, newest first
type ListRunsResult struct {
	Runs    []*domain.RunReport
	Network string
}

// ListRuns is the use case for listing recorded deployment runs
type ListRuns struct {
	config *config.RuntimeConfig
	store  RunStore
}

// NewListRuns creates a new ListRuns use case
func NewListRuns(cfg *config.RuntimeConfig, store RunStore) *ListRuns {
	return &ListRuns{
		config: cfg,
		store:  store,
	}
}

// Run executes the list runs use case
func (uc *ListRuns) Run(ctx context.Context, params ListRunsParams) (*ListRunsResult, error) {
	filter := domain.RunFilter{Plan: params.Plan}
	if !params.AllNetworks && uc.config.Network != nil {
		filter.Network = uc.config.Network.Name
	}

	runs, err := uc.store.ListRuns(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	if params.Limit > 0 && len(runs) > params.Limit {
		runs = runs[:params.Limit]
	}

	return &ListRunsResult{Runs: runs, Network: filter.Network}, nil
}
