//go:build ebiten

package main

import (
	"flag"
	"log"
	"os"

	"life-ca/internal/app"
	"life-ca/internal/config"
	"life-ca/internal/patterns"
	"life-ca/internal/sim"
	"life-ca/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func main() {
	cfg, err := config.Parse("life", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	logger := telemetry.NewLogger(os.Stderr, cfg.Telemetry.LogLevel)

	rec, err := telemetry.NewFileRecorder(cfg.Telemetry.OutputDir, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer rec.Close()

	ctrl := sim.New(sim.Options{
		Width:    cfg.Grid.Width,
		Height:   cfg.Grid.Height,
		CellSize: cfg.Grid.CellSize,
		TPS:      cfg.Simulation.TickHz,
		Workers:  cfg.Simulation.Workers,
	})
	seed := patterns.Seed(cfg.Simulation.Pattern, patterns.Options{
		Seed:    cfg.Simulation.Seed,
		Density: cfg.Simulation.Density,
	})
	ctrl.Reset(seed)
	ctrl.SetStepHook(telemetry.StepHook(logger, rec))

	game := app.New(ctrl, cfg, seed)
	size := ctrl.Size()

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.Display.TargetFPS)
	ebiten.SetWindowSize(size.W*cfg.Grid.CellSize, size.H*cfg.Grid.CellSize)

	logger.Info("starting",
		"width", size.W, "height", size.H,
		"tick_hz", cfg.Simulation.TickHz, "target_fps", cfg.Display.TargetFPS,
		"pattern", cfg.Simulation.Pattern)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		rec.Close()
		log.Fatal(err)
	}
	logger.Info("stopped", "generation", ctrl.Generation())
}
