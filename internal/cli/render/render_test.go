package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

func sampleReport() *usecase.RunDeploymentResult {
	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &usecase.RunDeploymentResult{Report: &domain.RunReport{
		Plan:            "givables",
		Network:         "localhost",
		ChainID:         31337,
		Contract:        "Givables",
		ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		Steps: []domain.StepRecord{
			{Kind: domain.StepKindDeploy, Args: []string{"ipfs://uri"}, TxHash: "0x0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef", BlockNumber: 1, Status: domain.ReceiptStatusSuccess},
			{Kind: domain.StepKindMint, Method: "adminIssueToken", Args: []string{"0x5bfad8b41f8172375db73344b53318fa290b1030"}, TxHash: "0xfeed", BlockNumber: 2, Status: domain.ReceiptStatusReverted},
			{Kind: domain.StepKindRead, Method: "tokenURI", Args: []string{"0"}, Value: "ipfs://uri"},
		},
		Reads:      []string{"ipfs://uri"},
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
	}}
}

func TestDeploymentRenderer_Text(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewDeploymentRenderer(&out, config.OutputText).Render(sampleReport()))

	s := out.String()
	assert.Contains(t, s, "givables on localhost (chain 31337)")
	assert.Contains(t, s, "Contract: Givables at 0x5FbDB2315678afecb367f032d93F642f64180aa3")
	assert.Contains(t, s, "constructor(ipfs://uri)")
	assert.Contains(t, s, "0x01234567…abcdef")
	assert.Contains(t, s, "tokenURI(0)")
	assert.Contains(t, s, "reverted")
	assert.Contains(t, s, "Completed 3 steps in 1.5s")
}

func TestDeploymentRenderer_Structured(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewDeploymentRenderer(&out, config.OutputJSON).Render(sampleReport()))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", decoded["contractAddress"])
		assert.Equal(t, []any{"ipfs://uri"}, decoded["reads"])
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewDeploymentRenderer(&out, config.OutputYAML).Render(sampleReport()))

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "givables", decoded["plan"])
		assert.Equal(t, 31337, decoded["chain_id"])
	})
}

func TestPlansRenderer(t *testing.T) {
	a, _ := domain.BuiltinPlan("givables")
	b, _ := domain.BuiltinPlan("givables-update")
	result := &usecase.ListPlansResult{Plans: []domain.DeploymentPlan{a, b}}

	var out bytes.Buffer
	require.NoError(t, NewPlansRenderer(&out, config.OutputText).Render(result))
	assert.Contains(t, out.String(), "givables-update")
	assert.Contains(t, out.String(), "tokenURI(0)")

	out.Reset()
	require.NoError(t, NewPlansRenderer(&out, config.OutputJSON).Render(result))
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "givables", decoded[0]["name"])
}

func TestNetworksRenderer(t *testing.T) {
	result := &usecase.ListNetworksResult{
		Current: "localhost",
		Networks: []usecase.NetworkStatus{
			{Name: "localhost", ChainID: 31337},
			{Name: "sepolia", Error: errors.New("connection refused")},
		},
	}

	var out bytes.Buffer
	require.NoError(t, NewNetworksRenderer(&out, config.OutputText).Render(result))
	assert.Contains(t, out.String(), "▸ ✅ localhost - Chain ID: 31337")
	assert.Contains(t, out.String(), "  ❌ sepolia - Error: connection refused")

	out.Reset()
	require.NoError(t, NewNetworksRenderer(&out, config.OutputText).Render(&usecase.ListNetworksResult{}))
	assert.Contains(t, out.String(), "No networks configured")
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "❌ Call adminIssueToken failed: execution reverted", FormatError("call adminIssueToken failed: execution reverted"))
	assert.Equal(t, "❌ ", FormatError(""))
}

func TestHistoryRenderer(t *testing.T) {
	report := sampleReport().Report

	var out bytes.Buffer
	require.NoError(t, NewHistoryRenderer(&out, config.OutputText).Render(&usecase.ListRunsResult{Runs: []*domain.RunReport{report}}))
	assert.Contains(t, out.String(), "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	assert.Contains(t, out.String(), "ipfs://uri")

	out.Reset()
	require.NoError(t, NewHistoryRenderer(&out, config.OutputText).Render(&usecase.ListRunsResult{Network: "sepolia"}))
	assert.Equal(t, "No runs recorded on sepolia\n", out.String())
}
