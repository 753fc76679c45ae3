package app

import (
	"log/slog"

	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Selector usecase.PlanSelector

	// Use cases
	RunDeployment *usecase.RunDeployment
	ResolvePlan   *usecase.ResolvePlan
	ListPlans     *usecase.ListPlans
	ListNetworks  *usecase.ListNetworks
	ListRuns      *usecase.ListRuns
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	selector usecase.PlanSelector,
	runDeployment *usecase.RunDeployment,
	resolvePlan *usecase.ResolvePlan,
	listPlans *usecase.ListPlans,
	listNetworks *usecase.ListNetworks,
	listRuns *usecase.ListRuns,
) (*App, error) {
	return &App{
		Config:        cfg,
		Log:           log,
		Selector:      selector,
		RunDeployment: runDeployment,
		ResolvePlan:   resolvePlan,
		ListPlans:     listPlans,
		ListNetworks:  listNetworks,
		ListRuns:      listRuns,
	}, nil
}
