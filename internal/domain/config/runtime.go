package config

import (
	"time"
)

// OutputFormat selects how run reports are rendered
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Network      *Network // always resolved, defaults to localhost
	ArtifactDirs []string // absolute paths searched for compiled contracts
	PlanFile     string

	// Signing
	PrivateKey string //nolint:gosec // resolved from env, never logged

	// Execution settings
	Debug               bool
	NonInteractive      bool
	AutoApprove         bool
	AllowReverted       bool
	Output              OutputFormat
	Timeout             time.Duration
	ConfirmationTimeout time.Duration

	// Resolved project file, nil when neither givables.toml nor foundry.toml exist
	Project *ProjectConfig
}

// Network represents network configuration
type Network struct {
	ChainID uint64 `json:"chainId"`
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
}

// IsLocal reports whether the network is a local development node
func (n *Network) IsLocal() bool {
	if n == nil {
		return true
	}
	switch n.Name {
	case "localhost", "hardhat", "anvil":
		return true
	}
	switch n.ChainID {
	case 31337, 1337:
		return true
	}
	return false
}
