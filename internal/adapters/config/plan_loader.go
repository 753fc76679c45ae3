package config

import (
	"path/filepath"

	"github.com/givables-xyz/givables-deploy/internal/config"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	domainconfig "github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
)

// PlanLoaderAdapter loads plan files relative to the project root
type PlanLoaderAdapter struct {
	projectRoot string
}

// NewPlanLoaderAdapter creates a new plan loader
func NewPlanLoaderAdapter(cfg *domainconfig.RuntimeConfig) *PlanLoaderAdapter {
	return &PlanLoaderAdapter{projectRoot: cfg.ProjectRoot}
}

// LoadPlan reads a TOML or YAML plan file
func (a *PlanLoaderAdapter) LoadPlan(path string) (domain.DeploymentPlan, error) {
	if !filepath.IsAbs(path) && a.projectRoot != "" {
		path = filepath.Join(a.projectRoot, path)
	}
	return config.LoadPlanFile(path)
}

var _ usecase.PlanLoader = (*PlanLoaderAdapter)(nil)
