package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customPlan = `
name = "custom"
contract = "Givables"
constructor_args = ["ipfs://custom"]

[mint]
method = "adminIssueToken"
args = ["0x5bfad8b41f8172375db73344b53318fa290b1030"]

[read]
method = "tokenURI"
args = ["0"]

[[updates]]
method = "updateURI"
args = ["ipfs://next"]
`

// newProject creates a project directory and makes it the working directory
func newProject(t *testing.T) string {
	t.Helper()
	color.NoColor = true

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "givables.toml"), []byte(`
[networks.sepolia]
rpc_url = "https://sepolia.example.org"
chain_id = 11155111
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "custom.toml"), []byte(customPlan), 0o644))
	t.Chdir(root)
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Commands(t *testing.T) {
	cmd := NewRootCmd()

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"deploy", "plans", "history", "networks", "version"})

	deploy, _, err := cmd.Find([]string{"deploy"})
	require.NoError(t, err)
	for _, flag := range []string{"plan-file", "select", "allow-reverted", "yes", "timeout", "confirmation-timeout"} {
		assert.NotNil(t, deploy.Flags().Lookup(flag), flag)
	}
	for _, flag := range []string{"network", "rpc-url", "output", "debug", "non-interactive", "artifacts"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "givables version dev")
}

func TestPlansCmd(t *testing.T) {
	newProject(t)

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "plans")
		require.NoError(t, err)
		assert.Contains(t, out, "givables-update")
		assert.Contains(t, out, "tokenURI(0)")
	})

	t.Run("json with plan file", func(t *testing.T) {
		out, err := execute(t, "plans", "--plan-file", "custom.toml", "-o", "json")
		require.NoError(t, err)

		var plans []domain.DeploymentPlan
		require.NoError(t, json.Unmarshal([]byte(out), &plans))
		require.Len(t, plans, 3)
		assert.Equal(t, "custom", plans[2].Name)
		assert.Equal(t, []string{"ipfs://custom"}, plans[2].ConstructorArgs)
	})

	t.Run("rejects unknown output", func(t *testing.T) {
		_, err := execute(t, "plans", "-o", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported output format")
	})
}

func TestDeployCmd_PlanSelectionErrors(t *testing.T) {
	newProject(t)

	t.Run("unknown plan", func(t *testing.T) {
		_, err := execute(t, "deploy", "nope")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPlanNotFound))
	})

	t.Run("plan name with plan file", func(t *testing.T) {
		_, err := execute(t, "deploy", "givables", "--plan-file", "custom.toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be combined")
	})

	t.Run("select with plan name", func(t *testing.T) {
		_, err := execute(t, "deploy", "givables", "--select")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--select cannot be combined")
	})

	t.Run("unknown network", func(t *testing.T) {
		_, err := execute(t, "deploy", "--network", "mainnet")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "network 'mainnet' not found (configured: sepolia)")
	})
}

func TestHistoryCmd_Empty(t *testing.T) {
	newProject(t)

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "No runs recorded on localhost\n", out)

	out, err = execute(t, "history", "--all", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}
