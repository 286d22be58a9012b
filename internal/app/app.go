//go:build ebiten

package app

import (
	"time"

	"life-ca/internal/config"
	"life-ca/internal/core"
	"life-ca/internal/render"
	"life-ca/internal/sim"
	"life-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const tpsStep = 5

// Game adapts a sim.Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *sim.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	reseed func(*core.Grid)

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided controller. reseed repopulates the
// board when R is pressed.
func New(ctrl *sim.Controller, cfg *config.Config, reseed func(*core.Grid)) *Game {
	size := ctrl.Size()
	alive, dead := cfg.Colors()
	return &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(size.W, size.H, render.Palette{Alive: alive, Dead: dead}),
		hud:     ui.NewHUD(ctrl, cfg.Display.ShowHUD),
		overlay: ui.NewOverlay(size, ctrl.CellSize(), cfg.Display.ShowGrid),
		reseed:  reseed,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Reset(nil)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset(g.reseed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	clock := g.ctrl.Clock()
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		clock.SetTPS(clock.TPS() + tpsStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && clock.TPS() > tpsStep {
		clock.SetTPS(clock.TPS() - tpsStep)
	}

	g.handlePointer()
	g.overlay.Update()

	now := time.Now()
	switch {
	case g.tickOnce:
		g.ctrl.Step(now)
		g.tickOnce = false
	case !g.paused:
		g.ctrl.Tick(now)
	}

	g.hud.Update(g.paused)
	return nil
}

func (g *Game) handlePointer() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	g.ctrl.PointerFrame(
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		x, y)
}

// Draw renders the current buffer.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.Current().Cells(), g.ctrl.CellSize())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.Size()
	return s.W * g.ctrl.CellSize(), s.H * g.ctrl.CellSize()
}
