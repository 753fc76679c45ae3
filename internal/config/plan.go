package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadPlanFile reads a deployment plan from a .toml, .yaml or .yml file.
// The plan is validated before it is returned.
func LoadPlanFile(path string) (domain.DeploymentPlan, error) {
	var plan domain.DeploymentPlan

	data, err := os.ReadFile(path) //nolint:gosec // operator supplied path
	if err != nil {
		return plan, fmt.Errorf("failed to read plan file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &plan); err != nil {
			return plan, fmt.Errorf("failed to parse plan file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &plan); err != nil {
			return plan, fmt.Errorf("failed to parse plan file %s: %w", path, err)
		}
	default:
		return plan, fmt.Errorf("unsupported plan file extension %q (expected .toml, .yaml or .yml)", ext)
	}

	if plan.Name == "" {
		plan.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := plan.Validate(); err != nil {
		return plan, err
	}

	return plan, nil
}
