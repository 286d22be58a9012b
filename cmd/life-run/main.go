package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"life-ca/internal/config"
	"life-ca/internal/patterns"
	"life-ca/internal/sim"
	"life-ca/internal/telemetry"

	"github.com/pkg/errors"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

// run steps the simulation headlessly, advancing a synthetic clock by one
// tick interval per iteration so every Tick is accepted.
func run(args []string, stdout io.Writer) error {
	generations := 1000
	stopWhenEmpty := false
	cfg, err := config.Parse("life-run", args, func(fs *flag.FlagSet) {
		fs.IntVar(&generations, "generations", generations, "number of generations to simulate")
		fs.BoolVar(&stopWhenEmpty, "stop-empty", stopWhenEmpty, "stop once every cell is dead")
	})
	if err != nil {
		return err
	}
	if generations < 0 {
		return errors.Errorf("generations must not be negative, got %d", generations)
	}
	logger := telemetry.NewLogger(os.Stderr, cfg.Telemetry.LogLevel)

	rec, err := telemetry.NewFileRecorder(cfg.Telemetry.OutputDir, cfg)
	if err != nil {
		return err
	}
	defer rec.Close()

	ctrl := sim.New(sim.Options{
		Width:    cfg.Grid.Width,
		Height:   cfg.Grid.Height,
		CellSize: cfg.Grid.CellSize,
		TPS:      cfg.Simulation.TickHz,
		Workers:  cfg.Simulation.Workers,
	})
	ctrl.Reset(patterns.Seed(cfg.Simulation.Pattern, patterns.Options{
		Seed:    cfg.Simulation.Seed,
		Density: cfg.Simulation.Density,
	}))

	var peak int
	hook := telemetry.StepHook(logger, rec)
	ctrl.SetStepHook(func(info sim.StepInfo) {
		peak = max(peak, info.Population)
		hook(info)
	})

	initial := ctrl.Current().Population()
	started := time.Now()
	now := started
	for ctrl.Generation() < uint64(generations) {
		ctrl.Tick(now)
		now = now.Add(ctrl.Clock().Interval())
		if stopWhenEmpty && ctrl.Current().Population() == 0 {
			break
		}
	}
	elapsed := time.Since(started)

	fmt.Fprintf(stdout, "Grid %dx%d, pattern %q: %d generations in %s\n",
		cfg.Grid.Width, cfg.Grid.Height, cfg.Simulation.Pattern, ctrl.Generation(), elapsed.Round(time.Microsecond))
	fmt.Fprintf(stdout, "Population: initial %d, peak %d, final %d\n",
		initial, max(peak, initial), ctrl.Current().Population())
	if dir := cfg.Telemetry.OutputDir; dir != "" {
		fmt.Fprintf(stdout, "Telemetry written to %s\n", dir)
	}
	return rec.Close()
}
