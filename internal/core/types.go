package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Coord addresses a grid cell. Values outside the grid are allowed and are
// rejected by the grid accessors.
type Coord struct {
	X int
	Y int
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord { return Coord{X: c.X + o.X, Y: c.Y + o.Y} }
