package core

// Cell states stored in a Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Grid stores a bounded 2D board of binary cells in row-major order. Cells
// outside the board are treated as dead; the board does not wrap.
type Grid struct {
	w, h int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions. Negative
// dimensions are treated as zero, which yields an empty but usable grid.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{w: w, h: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice for rendering. Callers must not write
// values other than Dead or Alive.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the state at (x, y). The boolean is false when the
// coordinates fall outside the grid.
func (g *Grid) Get(x, y int) (uint8, bool) {
	if !g.InBounds(x, y) {
		return Dead, false
	}
	return g.data[g.Index(x, y)], true
}

// Alive reports whether (x, y) is in bounds and alive.
func (g *Grid) Alive(x, y int) bool {
	v, ok := g.Get(x, y)
	return ok && v == Alive
}

// Set stores state at (x, y). Out-of-bounds writes are ignored and any
// non-zero state is stored as Alive.
func (g *Grid) Set(x, y int, state uint8) {
	if !g.InBounds(x, y) {
		return
	}
	if state != Dead {
		state = Alive
	}
	g.data[g.Index(x, y)] = state
}

// CountAliveNeighbors sums the Moore neighbourhood of (x, y). Neighbours
// outside the grid count as dead.
func (g *Grid) CountAliveNeighbors(x, y int) int {
	n := 0
	for _, off := range mooreOffsets {
		if v, ok := g.Get(x+off.X, y+off.Y); ok {
			n += int(v)
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Step writes the next generation of g into into, leaving g unchanged.
// into must have the same dimensions as g.
func (g *Grid) Step(into *Grid) {
	mustMatch(g, into)
	g.stepRows(into, 0, g.h)
}

// stepRows computes rows [y0, y1) of the next generation into into.
func (g *Grid) stepRows(into *Grid, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < g.w; x++ {
			idx := g.Index(x, y)
			into.data[idx] = NextState(g.data[idx], g.CountAliveNeighbors(x, y))
		}
	}
}

func mustMatch(a, b *Grid) {
	if a.w != b.w || a.h != b.h {
		panic("core: grid size mismatch")
	}
}

var mooreOffsets = [8]Coord{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}
