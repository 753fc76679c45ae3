package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/givables-xyz/givables-deploy/internal/domain/config"
)

// DefaultNetwork is used when no --network is given
const DefaultNetwork = "localhost"

// localNodeURL is where hardhat node and anvil listen by default
const localNodeURL = "http://127.0.0.1:8545"

// NetworkResolver resolves network names to configurations
type NetworkResolver struct {
	networks map[string]config.NetworkConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(project *config.ProjectConfig) *NetworkResolver {
	networks := make(map[string]config.NetworkConfig)
	if project != nil {
		for name, network := range project.Networks {
			networks[name] = network
		}
	}
	return &NetworkResolver{networks: networks}
}

// Resolve resolves a network name to its configuration. rpcOverride, when
// set, replaces the configured URL and allows names that are not configured.
func (r *NetworkResolver) Resolve(networkName, rpcOverride string) (*config.Network, error) {
	if networkName == "" {
		networkName = DefaultNetwork
	}

	network, exists := r.networks[networkName]
	if !exists {
		switch {
		case rpcOverride != "":
		case networkName == "localhost" || networkName == "hardhat" || networkName == "anvil":
			network = config.NetworkConfig{RPCURL: localNodeURL}
		default:
			return nil, fmt.Errorf("network '%s' not found (configured: %s)", networkName, strings.Join(r.Names(), ", "))
		}
	}

	if rpcOverride != "" {
		network.RPCURL = rpcOverride
	}

	if network.RPCURL == "" {
		return nil, fmt.Errorf("network '%s' has no rpc url (is its environment variable set?)", networkName)
	}

	return &config.Network{
		Name:    networkName,
		RPCURL:  network.RPCURL,
		ChainID: network.ChainID,
	}, nil
}

// Names returns the configured network names, sorted
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.networks))
	for name := range r.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
