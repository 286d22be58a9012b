package patterns

import (
	"slices"
	"testing"

	"life-ca/internal/core"
)

func TestNamesSorted(t *testing.T) {
	want := []string{"blinker", "block", "glider", "random", "thirds"}
	if got := Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, expected %v", got, want)
	}
}

func TestEmptyNameLeavesGridDead(t *testing.T) {
	g := core.NewGrid(8, 8)
	g.Set(3, 3, core.Alive)
	if !Apply(g, "", Options{}) {
		t.Fatal("empty pattern should be accepted")
	}
	if g.Population() != 0 {
		t.Fatalf("population = %d, expected 0", g.Population())
	}
}

func TestUnknownNameRejected(t *testing.T) {
	g := core.NewGrid(4, 4)
	g.Set(0, 0, core.Alive)
	if Apply(g, "gosper", Options{}) {
		t.Fatal("unknown pattern should be rejected")
	}
	if g.Population() != 0 {
		t.Fatal("grid should be cleared even when the pattern is unknown")
	}
}

func TestGliderCentered(t *testing.T) {
	g := core.NewGrid(10, 10)
	Apply(g, "glider", Options{})
	if g.Population() != len(Glider) {
		t.Fatalf("population = %d, expected %d", g.Population(), len(Glider))
	}
	origin := Glider.Centered(g)
	if origin != (core.Coord{X: 3, Y: 3}) {
		t.Fatalf("origin = %+v, expected (3,3)", origin)
	}
	for _, c := range Glider {
		p := origin.Add(c)
		if !g.Alive(p.X, p.Y) {
			t.Fatalf("glider cell (%d,%d) not alive", p.X, p.Y)
		}
	}
}

func TestStampClipsAtEdges(t *testing.T) {
	g := core.NewGrid(3, 3)
	Block.Stamp(g, core.Coord{X: 2, Y: 2})
	if g.Population() != 1 || !g.Alive(2, 2) {
		t.Fatalf("clipped block population = %d", g.Population())
	}
	Block.Stamp(g, core.Coord{X: -1, Y: -1})
	if !g.Alive(0, 0) || g.Population() != 2 {
		t.Fatalf("negative origin stamp population = %d", g.Population())
	}
}

func TestThirds(t *testing.T) {
	g := core.NewGrid(4, 3)
	Apply(g, "thirds", Options{})
	for i, v := range g.Cells() {
		want := core.Dead
		if i%3 == 0 {
			want = core.Alive
		}
		if v != want {
			t.Fatalf("cell %d = %d, expected %d", i, v, want)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, b := core.NewGrid(32, 32), core.NewGrid(32, 32)
	Apply(a, "random", Options{Seed: 5, Density: 0.3})
	Apply(b, "random", Options{Seed: 5, Density: 0.3})
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("random pattern not deterministic for a fixed seed")
	}
	if a.Population() == 0 || a.Population() == 32*32 {
		t.Fatalf("implausible random population %d", a.Population())
	}

	empty := core.NewGrid(8, 8)
	Apply(empty, "random", Options{Seed: 5, Density: 0})
	if empty.Population() != 0 {
		t.Fatal("zero density should produce an empty grid")
	}
}

func TestSeedMatchesApply(t *testing.T) {
	a, b := core.NewGrid(12, 12), core.NewGrid(12, 12)
	Apply(a, "blinker", Options{})
	b.Set(0, 0, core.Alive)
	Seed("blinker", Options{})(b)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Seed and Apply produced different grids")
	}
}
