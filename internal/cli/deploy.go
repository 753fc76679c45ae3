package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/givables-xyz/givables-deploy/internal/cli/render"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var selectPlan bool

	cmd := &cobra.Command{
		Use:   "deploy [plan]",
		Short: "Deploy Givables and run a plan's mint, read and update calls",
		Long: `Deploy a fresh Givables contract and drive it through a plan:

  1. deploy the contract with the plan's constructor arguments
  2. mint token 0 to the admin
  3. read tokenURI(0) and print it
  4. for update plans, call each update method, then read tokenURI(0) again

Every transaction is awaited before the next call is made. The first failure
aborts the run. Each run deploys a new contract.

Built-in plans:
  givables          IPFS metadata, mint and read
  givables-update   image and description metadata, mint, read, update URI
                    and description, read again

Examples:
  # Deploy to a local hardhat or anvil node
  givables deploy

  # Run the update plan on sepolia, without the confirmation prompt
  givables deploy givables-update --network sepolia --yes

  # Run a plan from a file and print the report as JSON
  givables deploy --plan-file plans/custom.toml -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var plan domain.DeploymentPlan
			if selectPlan {
				if len(args) > 0 || app.Config.PlanFile != "" {
					return errors.New("--select cannot be combined with a plan name or --plan-file")
				}
				listed, err := app.ListPlans.Run(cmd.Context(), usecase.ListPlansParams{})
				if err != nil {
					return err
				}
				plan, err = app.Selector.SelectPlan(cmd.Context(), listed.Plans, "Select a plan to deploy")
				if err != nil {
					return err
				}
			} else {
				name := ""
				if len(args) > 0 {
					name = args[0]
				}
				plan, err = app.ResolvePlan.Run(cmd.Context(), name, app.Config.PlanFile)
				if err != nil {
					return err
				}
			}

			app.Log.Debug("running plan", "plan", plan.Name, "network", app.Config.Network.Name, "rpc", app.Config.Network.RPCURL)

			result, err := app.RunDeployment.Run(cmd.Context(), usecase.RunDeploymentParams{Plan: plan})
			if err != nil {
				if errors.Is(err, domain.ErrCancelled) {
					fmt.Fprintln(cmd.ErrOrStderr(), render.FormatWarning("Deployment cancelled"))
					return nil
				}
				return err
			}

			renderer := render.NewDeploymentRenderer(cmd.OutOrStdout(), app.Config.Output)
			return renderer.Render(result)
		},
	}

	cmd.Flags().String("plan-file", "", "Run a plan from a .toml or .yaml file instead of a built-in plan")
	cmd.Flags().BoolVar(&selectPlan, "select", false, "Pick the plan interactively")
	cmd.Flags().Bool("allow-reverted", false, "Continue when a transaction is mined with failed status")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt on non-local networks")
	cmd.Flags().Duration("timeout", 0, "Abort the whole run after this long (0 disables)")
	cmd.Flags().Duration("confirmation-timeout", 5*time.Minute, "How long to wait for each transaction to be mined")

	return cmd
}
