package sim

import (
	"math"

	"life-ca/internal/core"
)

// ScreenToGrid maps a screen-space position to the grid cell under it.
// Positions left of or above the grid map to negative coordinates, which the
// grid rejects.
func ScreenToGrid(screenX, screenY float64, cellSize int) core.Coord {
	if cellSize <= 0 {
		cellSize = 1
	}
	if math.IsNaN(screenX) || math.IsNaN(screenY) || math.IsInf(screenX, 0) || math.IsInf(screenY, 0) {
		return core.Coord{X: -1, Y: -1}
	}
	cs := float64(cellSize)
	return core.Coord{
		X: int(math.Floor(screenX / cs)),
		Y: int(math.Floor(screenY / cs)),
	}
}

// Paint sets the cell under the screen position alive. Positions outside
// the grid are ignored.
func Paint(g *core.Grid, screenX, screenY float64, cellSize int) {
	c := ScreenToGrid(screenX, screenY, cellSize)
	g.Set(c.X, c.Y, core.Alive)
}
