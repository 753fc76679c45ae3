package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
)

func TestNetworkResolver(t *testing.T) {
	resolver := NewNetworkResolver(&config.ProjectConfig{
		Networks: map[string]config.NetworkConfig{
			"sepolia": {RPCURL: "https://sepolia.example", ChainID: 11155111},
			"broken":  {RPCURL: ""},
		},
	})

	tests := []struct {
		name        string
		network     string
		override    string
		wantURL     string
		wantChainID uint64
		wantErr     string
	}{
		{name: "configured", network: "sepolia", wantURL: "https://sepolia.example", wantChainID: 11155111},
		{name: "empty name is localhost", network: "", wantURL: "http://127.0.0.1:8545"},
		{name: "hardhat builtin", network: "hardhat", wantURL: "http://127.0.0.1:8545"},
		{name: "override configured", network: "sepolia", override: "http://x:1", wantURL: "http://x:1", wantChainID: 11155111},
		{name: "override unknown", network: "custom", override: "http://y:2", wantURL: "http://y:2"},
		{name: "unknown", network: "mainnet", wantErr: "configured: broken, sepolia"},
		{name: "unset variable", network: "broken", wantErr: "has no rpc url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network, err := resolver.Resolve(tt.network, tt.override)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, network.RPCURL)
			assert.Equal(t, tt.wantChainID, network.ChainID)
		})
	}
}

func TestNetworkIsLocal(t *testing.T) {
	assert.True(t, (&config.Network{Name: "localhost"}).IsLocal())
	assert.True(t, (&config.Network{Name: "custom", ChainID: 31337}).IsLocal())
	assert.False(t, (&config.Network{Name: "sepolia", ChainID: 11155111}).IsLocal())
}
