package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SpinnerSink renders run progress as a spinner on stderr and prints
// info lines to out
type SpinnerSink struct {
	mu      sync.Mutex
	out     io.Writer
	spinner *spinner.Spinner
	animate bool
	title   cases.Caser
}

// NewSpinnerSink creates a sink writing info lines to out. When animate is
// false, stage changes are printed as plain lines instead.
func NewSpinnerSink(out io.Writer, animate bool) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: s,
		animate: animate,
		title:   cases.Title(language.English),
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := r.format(event)
	if !r.animate {
		fmt.Fprintln(r.out, color.New(color.Faint).Sprint(line))
		return
	}

	if event.Spinner {
		r.spinner.Suffix = " " + line
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.print(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.print(color.New(color.FgRed), message)
}

func (r *SpinnerSink) print(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Stop spinner temporarily
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerSink) format(event usecase.ProgressEvent) string {
	stage := r.title.String(event.Stage)
	if event.Total > 0 {
		return fmt.Sprintf("[%d/%d] %s: %s", event.Current, event.Total, stage, event.Message)
	}
	return fmt.Sprintf("%s: %s", stage, event.Message)
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
