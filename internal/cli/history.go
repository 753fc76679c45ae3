package cli

import (
	"github.com/givables-xyz/givables-deploy/internal/cli/render"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	var params usecase.ListRunsParams

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded deployment runs",
		Long: `List the runs recorded in .givables/runs.json, newest first.

Only runs on the active network are shown unless --all is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListRuns.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewHistoryRenderer(cmd.OutOrStdout(), app.Config.Output).Render(result)
		},
	}

	cmd.Flags().StringVar(&params.Plan, "plan", "", "Only show runs of this plan")
	cmd.Flags().BoolVar(&params.AllNetworks, "all", false, "Show runs on every network")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "Show at most this many runs")

	return cmd
}
