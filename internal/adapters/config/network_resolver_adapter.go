package config

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/givables-xyz/givables-deploy/internal/config"
	domainconfig "github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/samber/lo"
)

// probeTimeout bounds each eth_chainId request when listing networks
const probeTimeout = 5 * time.Second

// NetworkResolverAdapter adapts config.NetworkResolver to the usecase.NetworkResolver interface
type NetworkResolverAdapter struct {
	resolver *config.NetworkResolver
}

// NewNetworkResolverAdapter creates a new adapter
func NewNetworkResolverAdapter(cfg *domainconfig.RuntimeConfig) *NetworkResolverAdapter {
	return &NetworkResolverAdapter{
		resolver: config.NewNetworkResolver(cfg.Project),
	}
}

// GetNetworks returns the configured network names plus the local default
func (a *NetworkResolverAdapter) GetNetworks(ctx context.Context) []string {
	return lo.Uniq(append([]string{config.DefaultNetwork}, a.resolver.Names()...))
}

// ProbeChainID asks the network's node for its chain id
func (a *NetworkResolverAdapter) ProbeChainID(ctx context.Context, name string) (uint64, error) {
	network, err := a.resolver.Resolve(name, "")
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}

	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		return chainID.Uint64(), fmt.Errorf("chain ID mismatch: expected %d, got %d", network.ChainID, chainID.Uint64())
	}
	return chainID.Uint64(), nil
}

// Ensure the adapter implements the interface
var _ usecase.NetworkResolver = (*NetworkResolverAdapter)(nil)
