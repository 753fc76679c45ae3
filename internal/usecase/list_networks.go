package usecase

import (
	"context"

	"github.com/givables-xyz/givables-deploy/internal/domain/config"
)

// NetworkResolver lists configured networks and probes their chain id
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ProbeChainID(ctx context.Context, name string) (uint64, error)
}

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct{}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Current  string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	ChainID uint64
	Error   error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver NetworkResolver
	current  string
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver) *ListNetworks {
	current := ""
	if cfg.Network != nil {
		current = cfg.Network.Name
	}
	return &ListNetworks{
		resolver: resolver,
		current:  current,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)

	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name: name,
		}

		chainID, err := uc.resolver.ProbeChainID(ctx, name)
		if err != nil {
			status.Error = err
		} else {
			status.ChainID = chainID
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Current:  uc.current,
	}, nil
}
