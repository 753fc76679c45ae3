package render

import (
	"fmt"
	"io"

	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
)

// PlansRenderer renders the available deployment plans
type PlansRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewPlansRenderer creates a new plans renderer
func NewPlansRenderer(out io.Writer, format config.OutputFormat) *PlansRenderer {
	return &PlansRenderer{out: out, format: format}
}

// Render prints one row per plan
func (r *PlansRenderer) Render(result *usecase.ListPlansResult) error {
	if done, err := writeStructured(r.out, r.format, result.Plans); done {
		return err
	}

	if len(result.Plans) == 0 {
		fmt.Fprintln(r.out, "No plans available")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box.PaddingRight = "  "

	t.AppendHeader(table.Row{"PLAN", "CONTRACT", "MINT", "READ", "UPDATES", "DESCRIPTION"})
	for _, plan := range result.Plans {
		t.AppendRow(table.Row{
			headerStyle.Sprint(plan.Name),
			plan.Contract,
			plan.Mint.Method,
			plan.Read.String(),
			len(plan.Updates),
			faintStyle.Sprint(plan.Description),
		})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

var _ Renderer[*usecase.ListPlansResult] = (*PlansRenderer)(nil)
