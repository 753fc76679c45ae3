package config

// ProjectConfig represents givables.toml merged with the rpc endpoints of
// foundry.toml when one is present.
type ProjectConfig struct {
	Artifacts []string                 `toml:"artifacts,omitempty"`
	Networks  map[string]NetworkConfig `toml:"networks"`
}

// NetworkConfig represents a [networks.<name>] section
type NetworkConfig struct {
	RPCURL  string `toml:"rpc_url"`
	ChainID uint64 `toml:"chain_id,omitempty"`
}

// FoundryConfig is the subset of foundry.toml read for network lookup
type FoundryConfig struct {
	RpcEndpoints map[string]string `toml:"rpc_endpoints"`
}
