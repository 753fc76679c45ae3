package render

import (
	"fmt"
	"io"

	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
)

// HistoryRenderer renders recorded runs
type HistoryRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewHistoryRenderer creates a new history renderer
func NewHistoryRenderer(out io.Writer, format config.OutputFormat) *HistoryRenderer {
	return &HistoryRenderer{out: out, format: format}
}

// Render prints one row per run
func (r *HistoryRenderer) Render(result *usecase.ListRunsResult) error {
	if done, err := writeStructured(r.out, r.format, result.Runs); done {
		return err
	}

	if len(result.Runs) == 0 {
		if result.Network != "" {
			fmt.Fprintf(r.out, "No runs recorded on %s\n", result.Network)
		} else {
			fmt.Fprintln(r.out, "No runs recorded")
		}
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box.PaddingRight = "  "

	t.AppendHeader(table.Row{"STARTED", "PLAN", "NETWORK", "ADDRESS", "LAST READ"})
	for _, run := range result.Runs {
		lastRead := ""
		if len(run.Reads) > 0 {
			lastRead = run.Reads[len(run.Reads)-1]
		}
		t.AppendRow(table.Row{
			faintStyle.Sprint(run.StartedAt.Local().Format("2006-01-02 15:04:05")),
			headerStyle.Sprint(run.Plan),
			run.Network,
			addressStyle.Sprint(run.ContractAddress),
			lastRead,
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 5, WidthMax: 60}})

	fmt.Fprintln(r.out, t.Render())
	return nil
}

var _ Renderer[*usecase.ListRunsResult] = (*HistoryRenderer)(nil)
