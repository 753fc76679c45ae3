package interactive

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfirmer(cfg *config.RuntimeConfig, answer bool) (*ConfirmerAdapter, *bytes.Buffer, *[]string) {
	var out bytes.Buffer
	var asked []string
	return &ConfirmerAdapter{
		config: cfg,
		out:    &out,
		prompt: func(label string) (bool, error) {
			asked = append(asked, label)
			return answer, nil
		},
	}, &out, &asked
}

func TestConfirmBroadcast(t *testing.T) {
	color.NoColor = true
	plan, err := domain.BuiltinPlan("givables-update")
	require.NoError(t, err)

	sepolia := &config.Network{Name: "sepolia", ChainID: 11155111}
	ctx := context.Background()

	t.Run("local network skips the prompt", func(t *testing.T) {
		c, _, asked := newTestConfirmer(&config.RuntimeConfig{}, false)
		ok, err := c.ConfirmBroadcast(ctx, plan, &config.Network{Name: "localhost"})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, *asked)
	})

	t.Run("auto approve skips the prompt", func(t *testing.T) {
		c, _, asked := newTestConfirmer(&config.RuntimeConfig{AutoApprove: true}, false)
		ok, err := c.ConfirmBroadcast(ctx, plan, sepolia)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, *asked)
	})

	t.Run("non-interactive refuses without --yes", func(t *testing.T) {
		c, _, _ := newTestConfirmer(&config.RuntimeConfig{NonInteractive: true}, true)
		_, err := c.ConfirmBroadcast(ctx, plan, sepolia)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "without --yes")
	})

	t.Run("prompts with a summary", func(t *testing.T) {
		c, out, asked := newTestConfirmer(&config.RuntimeConfig{}, false)
		ok, err := c.ConfirmBroadcast(ctx, plan, sepolia)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []string{"Broadcast givables-update to sepolia"}, *asked)
		assert.Contains(t, out.String(), "(chain 11155111)")
		assert.Contains(t, out.String(), "adminIssueToken(0x5bfad8b41f8172375db73344b53318fa290b1030)")
		assert.Contains(t, out.String(), "updateDescription(we changed bby)")
	})
}

func TestFormatPlanOptions(t *testing.T) {
	color.NoColor = true
	a, _ := domain.BuiltinPlan("givables")
	b, _ := domain.BuiltinPlan("givables-update")

	assert.Equal(t, []string{
		"givables (Givables)",
		"givables-update (Givables, 2 updates)",
	}, formatPlanOptions([]domain.DeploymentPlan{a, b}))
}

func TestFuzzySearch(t *testing.T) {
	search := createFuzzySearchFunc([]string{"givables (Givables)", "givables-update (Givables, 2 updates)"})
	assert.True(t, search("", 0))
	assert.True(t, search("upd", 1))
	assert.False(t, search("upd", 0))
	assert.True(t, search("gvupd", 1))
}
