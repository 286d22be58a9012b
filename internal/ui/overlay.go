//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/internal/core"
	"life-ca/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	gridLineColor = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	hoverColor    = color.RGBA{R: 255, G: 255, B: 255, A: 160}
)

// Overlay draws optional grid lines and outlines the cell under the cursor.
type Overlay struct {
	size     core.Size
	cellSize int
	showGrid bool

	hover    core.Coord
	hasHover bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(size core.Size, cellSize int, showGrid bool) *Overlay {
	o := &Overlay{size: size, cellSize: cellSize, showGrid: showGrid}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles grid lines on G and tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	mx, my := ebiten.CursorPosition()
	o.hover = sim.ScreenToGrid(float64(mx), float64(my), o.cellSize)
	o.hasHover = o.hover.X >= 0 && o.hover.X < o.size.W && o.hover.Y >= 0 && o.hover.Y < o.size.H
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	cs := float64(o.cellSize)
	if o.showGrid && o.cellSize >= 4 {
		w := float64(o.size.W) * cs
		h := float64(o.size.H) * cs
		for x := 1; x < o.size.W; x++ {
			o.fillRect(screen, float64(x)*cs, 0, 1, h, gridLineColor)
		}
		for y := 1; y < o.size.H; y++ {
			o.fillRect(screen, 0, float64(y)*cs, w, 1, gridLineColor)
		}
	}
	if o.hasHover {
		x, y := float64(o.hover.X)*cs, float64(o.hover.Y)*cs
		o.fillRect(screen, x, y, cs, 1, hoverColor)
		o.fillRect(screen, x, y+cs-1, cs, 1, hoverColor)
		o.fillRect(screen, x, y, 1, cs, hoverColor)
		o.fillRect(screen, x+cs-1, y, 1, cs, hoverColor)
	}
}

func (o *Overlay) fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(o.pixel, op)
}
