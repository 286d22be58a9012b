package telemetry

import (
	"io"
	"log/slog"

	"life-ca/internal/config"
	"life-ca/internal/sim"
)

// NewLogger builds a text logger at the named level. Unknown levels fall
// back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// StepHook returns a controller hook that logs every step at debug level
// and appends it to rec. After the first write failure is logged, later
// samples are dropped.
func StepHook(logger *slog.Logger, rec *Recorder) func(sim.StepInfo) {
	failed := false
	return func(info sim.StepInfo) {
		logger.Debug("generation stepped",
			"generation", info.Generation,
			"population", info.Population,
			"took", info.Took)
		if failed {
			return
		}
		if err := rec.Write(SampleFromStep(info)); err != nil {
			failed = true
			logger.Warn("telemetry disabled", "err", err)
		}
	}
}
