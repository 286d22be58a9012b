// Package patterns holds named seeders that populate a grid at startup or on
// reset.
package patterns

import (
	"sort"

	"life-ca/internal/core"
)

// Options carries the knobs a seeder may use.
type Options struct {
	Seed    int64
	Density float64
}

// Seeder writes a starting pattern into g. Seeders assume g is all dead.
type Seeder func(g *core.Grid, opts Options)

var seeders = map[string]Seeder{}

// Register adds a seeder under the provided name.
func Register(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Lookup returns the seeder registered under name. The empty name resolves
// to a seeder that leaves the grid dead.
func Lookup(name string) (Seeder, bool) {
	if name == "" {
		return func(*core.Grid, Options) {}, true
	}
	s, ok := seeders[name]
	return s, ok
}

// Names lists the registered seeders in sorted order.
func Names() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply clears g and seeds it with the named pattern. Unknown names leave g
// cleared and report false.
func Apply(g *core.Grid, name string, opts Options) bool {
	g.Clear()
	s, ok := Lookup(name)
	if !ok {
		return false
	}
	s(g, opts)
	return true
}

// Shape is a fixed set of live cells relative to its top-left corner.
type Shape []core.Coord

// Bounds returns the width and height of the shape's bounding box.
func (s Shape) Bounds() core.Size {
	var size core.Size
	for _, c := range s {
		size.W = max(size.W, c.X+1)
		size.H = max(size.H, c.Y+1)
	}
	return size
}

// Stamp sets the shape's cells alive with its top-left corner at origin.
// Cells falling outside g are dropped.
func (s Shape) Stamp(g *core.Grid, origin core.Coord) {
	for _, c := range s {
		p := origin.Add(c)
		g.Set(p.X, p.Y, core.Alive)
	}
}

// Centered returns the origin that centres the shape on g.
func (s Shape) Centered(g *core.Grid) core.Coord {
	gs, ss := g.Size(), s.Bounds()
	return core.Coord{X: (gs.W - ss.W) / 2, Y: (gs.H - ss.H) / 2}
}

var (
	// Glider travels one cell down and right every four generations.
	Glider = Shape{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	// Block is a 2x2 still life.
	Block = Shape{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	// Blinker is a period-2 oscillator.
	Blinker = Shape{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
)

func stampCentered(s Shape) Seeder {
	return func(g *core.Grid, _ Options) {
		s.Stamp(g, s.Centered(g))
	}
}

// thirds marks every third cell of the backing slice alive.
func thirds(g *core.Grid, _ Options) {
	cells := g.Cells()
	for i := 0; i < len(cells); i += 3 {
		cells[i] = core.Alive
	}
}

func random(g *core.Grid, opts Options) {
	core.NewRNG(opts.Seed).FillDensity(g, opts.Density)
}

func init() {
	Register("glider", stampCentered(Glider))
	Register("block", stampCentered(Block))
	Register("blinker", stampCentered(Blinker))
	Register("thirds", thirds)
	Register("random", random)
}

// Seed returns a function that reseeds a grid with the named pattern. It is
// shaped for sim.Controller.Reset.
func Seed(name string, opts Options) func(g *core.Grid) {
	return func(g *core.Grid) {
		Apply(g, name, opts)
	}
}
