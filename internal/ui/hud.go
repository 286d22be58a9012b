//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding = 4
	hudHeight  = 13 + 2*hudPadding
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a one-line status bar across the top of the board.
type HUD struct {
	src     parameterProvider
	visible bool
	line    string
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD reading values from src.
func NewHUD(src parameterProvider, visible bool) *HUD {
	h := &HUD{src: src, visible: visible}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update refreshes the cached status line.
func (h *HUD) Update(paused bool) {
	if h == nil || !h.visible {
		return
	}
	h.line = StatusLine(h.src.Parameters(), paused)
}

// Draw paints the status bar.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.line == "" {
		return
	}
	face := basicfont.Face7x13
	width := screen.Bounds().Dx()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), hudHeight)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.pixel, op)

	text.Draw(screen, h.line, face, hudPadding, hudPadding+face.Ascent, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
