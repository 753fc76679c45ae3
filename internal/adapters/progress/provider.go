package progress

import (
	"os"

	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
)

// ProvideProgressSink picks the sink for the configured output. Structured
// output keeps stdout clean for the report.
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.Output != "" && cfg.Output != config.OutputText {
		return NewNopSink()
	}
	return NewSpinnerSink(os.Stdout, !cfg.NonInteractive && !cfg.Debug)
}
