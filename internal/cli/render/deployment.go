package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	headerStyle   = color.New(color.FgCyan, color.Bold)
	addressStyle  = color.New(color.FgYellow)
	revertedStyle = color.New(color.FgRed)
	successStyle  = color.New(color.FgGreen)
	faintStyle    = color.New(color.Faint)
)

// DeploymentRenderer renders the report of a deployment run
type DeploymentRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer, format config.OutputFormat) *DeploymentRenderer {
	return &DeploymentRenderer{
		out:    out,
		format: format,
	}
}

// Render prints the run report
func (r *DeploymentRenderer) Render(result *usecase.RunDeploymentResult) error {
	report := result.Report
	if done, err := writeStructured(r.out, r.format, report); done {
		return err
	}

	fmt.Fprintln(r.out)
	headerStyle.Fprintf(r.out, "%s on %s", report.Plan, report.Network)
	if report.ChainID != 0 {
		faintStyle.Fprintf(r.out, " (chain %d)", report.ChainID)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "  Contract: %s at %s\n", report.Contract, addressStyle.Sprint(report.ContractAddress))
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, renderSteps(report.Steps))
	fmt.Fprintln(r.out)

	elapsed := report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Completed %d steps in %s", len(report.Steps), elapsed)))
	return nil
}

func renderSteps(steps []domain.StepRecord) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box.PaddingRight = "  "

	t.AppendHeader(table.Row{"#", "STEP", "CALL", "TX / VALUE", "BLOCK", "STATUS"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, WidthMax: 60},
		{Number: 5, Align: text.AlignRight},
	})

	for i, step := range steps {
		call := step.Method
		if step.Kind == domain.StepKindDeploy {
			call = "constructor"
		}
		call = fmt.Sprintf("%s(%s)", call, strings.Join(step.Args, ", "))

		detail := shortHash(step.TxHash)
		block := ""
		if step.Kind == domain.StepKindRead {
			detail = step.Value
		} else {
			block = fmt.Sprintf("%d", step.BlockNumber)
		}

		t.AppendRow(table.Row{i + 1, string(step.Kind), call, detail, block, formatStatus(step)})
	}

	return t.Render()
}

func formatStatus(step domain.StepRecord) string {
	switch step.Status {
	case domain.ReceiptStatusSuccess:
		return successStyle.Sprint("✓")
	case domain.ReceiptStatusReverted:
		return revertedStyle.Sprint("reverted")
	}
	return faintStyle.Sprint("-")
}

var _ Renderer[*usecase.RunDeploymentResult] = (*DeploymentRenderer)(nil)
