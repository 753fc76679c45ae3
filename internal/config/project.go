package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
)

const (
	// ProjectFileName is the optional per-project configuration file
	ProjectFileName = "givables.toml"

	foundryFileName = "foundry.toml"
)

// DefaultArtifactDirs are searched when the project file lists none:
// hardhat output first, then foundry.
var DefaultArtifactDirs = []string{"artifacts", "out"}

// loadEnvFiles loads .env files from the project root. Variables already
// present in the environment take precedence.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// LoadProjectConfig reads givables.toml and the [rpc_endpoints] of
// foundry.toml. Both files are optional; networks declared in givables.toml
// win over foundry endpoints of the same name.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, error) {
	loadEnvFiles(projectRoot)

	cfg := &config.ProjectConfig{
		Networks: make(map[string]config.NetworkConfig),
	}

	foundryPath := filepath.Join(projectRoot, foundryFileName)
	if _, err := os.Stat(foundryPath); err == nil {
		var foundry config.FoundryConfig
		if _, err := toml.DecodeFile(foundryPath, &foundry); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", foundryFileName, err)
		}
		for name, url := range foundry.RpcEndpoints {
			cfg.Networks[name] = config.NetworkConfig{RPCURL: os.ExpandEnv(url)}
		}
	}

	projectPath := filepath.Join(projectRoot, ProjectFileName)
	if _, err := os.Stat(projectPath); err == nil {
		var project config.ProjectConfig
		if _, err := toml.DecodeFile(projectPath, &project); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
		}
		cfg.Artifacts = project.Artifacts
		for name, network := range project.Networks {
			network.RPCURL = os.ExpandEnv(network.RPCURL)
			cfg.Networks[name] = network
		}
	}

	if len(cfg.Artifacts) == 0 {
		cfg.Artifacts = append([]string(nil), DefaultArtifactDirs...)
	}

	return cfg, nil
}

// resolveArtifactDirs makes artifact directories absolute relative to the project root
func resolveArtifactDirs(projectRoot string, dirs []string) []string {
	resolved := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(projectRoot, dir)
		}
		resolved = append(resolved, dir)
	}
	return resolved
}
