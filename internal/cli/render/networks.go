package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, format config.OutputFormat) *NetworksRenderer {
	return &NetworksRenderer{
		out:    out,
		format: format,
	}
}

type networkEntry struct {
	Name    string `json:"name" yaml:"name"`
	ChainID uint64 `json:"chainId,omitempty" yaml:"chain_id,omitempty"`
	Current bool   `json:"current,omitempty" yaml:"current,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Render renders the list of networks with their probed chain ids
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	entries := make([]networkEntry, 0, len(result.Networks))
	for _, network := range result.Networks {
		entry := networkEntry{Name: network.Name, ChainID: network.ChainID, Current: network.Name == result.Current}
		if network.Error != nil {
			entry.Error = network.Error.Error()
		}
		entries = append(entries, entry)
	}

	if done, err := writeStructured(r.out, r.format, entries); done {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No networks configured in givables.toml or foundry.toml [rpc_endpoints]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, entry := range entries {
		marker := "  "
		if entry.Current {
			marker = color.New(color.FgCyan).Sprint("▸ ")
		}
		if entry.Error != "" {
			fmt.Fprintf(r.out, "%s❌ %s - Error: %s\n", marker, entry.Name, entry.Error)
		} else {
			fmt.Fprintf(r.out, "%s✅ %s - Chain ID: %d\n", marker, entry.Name, entry.ChainID)
		}
	}

	return nil
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
