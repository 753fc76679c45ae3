package cli

import (
	"github.com/givables-xyz/givables-deploy/internal/cli/render"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewPlansCmd creates the plans command
func NewPlansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List the deployment plans",
		Long:  `List the built-in deployment plans, and the plan in --plan-file when given.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListPlans.Run(cmd.Context(), usecase.ListPlansParams{PlanFile: app.Config.PlanFile})
			if err != nil {
				return err
			}

			return render.NewPlansRenderer(cmd.OutOrStdout(), app.Config.Output).Render(result)
		},
	}

	cmd.Flags().String("plan-file", "", "Also show the plan in this .toml or .yaml file")

	return cmd
}
