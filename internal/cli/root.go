package cli

import (
	"context"
	"fmt"

	"github.com/givables-xyz/givables-deploy/internal/app"
	"github.com/givables-xyz/givables-deploy/internal/config"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "givables",
		Short: "Deploy the Givables NFT contract and drive its first calls",
		Long: `givables deploys the Givables contract to an EVM network, mints the first
token to the admin, reads its metadata back and, for update plans, rewrites
the metadata and reads it again.

Networks come from givables.toml [networks] and foundry.toml [rpc_endpoints].
Transactions are signed with the key in PRIVATE_KEY (a .env file is loaded).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if skipAppInit(cmd) {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey, appInstance))

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g. localhost, sepolia)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC url, overrides the configured network url")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().StringSlice("artifacts", nil, "Directories searched for compiled contracts")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	plansCmd := NewPlansCmd()
	plansCmd.GroupID = "main"
	rootCmd.AddCommand(plansCmd)

	historyCmd := NewHistoryCmd()
	historyCmd.GroupID = "main"
	rootCmd.AddCommand(historyCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// skipAppInit reports whether a command runs without project configuration
func skipAppInit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", "__complete":
		return true
	}
	return !cmd.Runnable()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
