//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/givables-xyz/givables-deploy/internal/adapters"
	"github.com/givables-xyz/givables-deploy/internal/config"
	"github.com/givables-xyz/givables-deploy/internal/logging"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewRunDeployment,
		usecase.NewResolvePlan,
		usecase.NewListPlans,
		usecase.NewListNetworks,
		usecase.NewListRuns,

		// App
		NewApp,
	)
	return nil, nil
}
