package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
)

// projectMarkers identify the root of a contract project
var projectMarkers = []string{
	ProjectFileName,
	"hardhat.config.js",
	"hardhat.config.ts",
	foundryFileName,
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	output := config.OutputFormat(strings.ToLower(v.GetString("output")))
	switch output {
	case config.OutputText, config.OutputJSON, config.OutputYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q (expected text, json or yaml)", output)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:         projectRoot,
		DataDir:             filepath.Join(projectRoot, ".givables"),
		PlanFile:            v.GetString("plan_file"),
		Debug:               v.GetBool("debug"),
		NonInteractive:      v.GetBool("non_interactive"),
		AutoApprove:         v.GetBool("yes"),
		AllowReverted:       v.GetBool("allow_reverted"),
		Output:              output,
		Timeout:             v.GetDuration("timeout"),
		ConfirmationTimeout: v.GetDuration("confirmation_timeout"),
	}

	project, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}
	cfg.Project = project

	// The signer key is read after .env files are loaded
	cfg.PrivateKey = v.GetString("private_key")
	if cfg.PrivateKey == "" {
		cfg.PrivateKey = os.Getenv("PRIVATE_KEY")
	}

	artifactDirs := v.GetStringSlice("artifacts")
	if len(artifactDirs) == 0 {
		artifactDirs = project.Artifacts
	}
	cfg.ArtifactDirs = resolveArtifactDirs(projectRoot, artifactDirs)

	networkResolver := NewNetworkResolver(project)
	network, err := networkResolver.Resolve(v.GetString("network"), v.GetString("rpc_url"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}
	cfg.Network = network

	return cfg, nil
}

// FindProjectRoot walks up from the current directory looking for a
// project marker. Without one the current directory is used.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".givables"))

	// Set up environment variables
	v.SetEnvPrefix("GIVABLES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("network", DefaultNetwork)
	v.SetDefault("output", string(config.OutputText))
	v.SetDefault("timeout", "0s")
	v.SetDefault("confirmation_timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
