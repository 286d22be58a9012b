package core

import (
	"slices"
	"testing"
)

func seed(g *Grid, cells ...Coord) {
	for _, c := range cells {
		g.Set(c.X, c.Y, Alive)
	}
}

func aliveSet(g *Grid) map[Coord]bool {
	out := map[Coord]bool{}
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if g.Alive(x, y) {
				out[Coord{X: x, Y: y}] = true
			}
		}
	}
	return out
}

func expectAlive(t *testing.T, g *Grid, want ...Coord) {
	t.Helper()
	got := aliveSet(g)
	if len(got) != len(want) {
		t.Fatalf("alive cells = %v, expected %v", got, want)
	}
	for _, c := range want {
		if !got[c] {
			t.Fatalf("cell (%d,%d) expected alive; alive cells = %v", c.X, c.Y, got)
		}
	}
}

func TestNewGridAllDead(t *testing.T) {
	g := NewGrid(7, 3)
	if g.Size() != (Size{W: 7, H: 3}) {
		t.Fatalf("size = %+v", g.Size())
	}
	if len(g.Cells()) != 21 {
		t.Fatalf("len(cells) = %d, expected 21", len(g.Cells()))
	}
	if g.Population() != 0 {
		t.Fatalf("new grid population = %d", g.Population())
	}
}

func TestZeroSizedGrid(t *testing.T) {
	for _, g := range []*Grid{NewGrid(0, 0), NewGrid(0, 5), NewGrid(-3, 2)} {
		if len(g.Cells()) != 0 {
			t.Fatalf("degenerate grid has %d cells", len(g.Cells()))
		}
		if _, ok := g.Get(0, 0); ok {
			t.Fatal("Get on empty grid must report out of bounds")
		}
		g.Set(0, 0, Alive)
		next := NewGrid(g.Size().W, g.Size().H)
		g.Step(next)
	}
}

func TestGetBounds(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(3, 2, Alive)

	cases := []struct {
		x, y int
		ok   bool
		want uint8
	}{
		{0, 0, true, Dead},
		{3, 2, true, Alive},
		{4, 0, false, Dead},
		{0, 3, false, Dead},
		{-1, 0, false, Dead},
		{0, -1, false, Dead},
		{-1, -1, false, Dead},
		{100, 100, false, Dead},
	}
	for _, tc := range cases {
		v, ok := g.Get(tc.x, tc.y)
		if ok != tc.ok || v != tc.want {
			t.Fatalf("Get(%d,%d) = (%d,%v), expected (%d,%v)", tc.x, tc.y, v, ok, tc.want, tc.ok)
		}
	}
}

func TestSetMatchesGet(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(1, 2, Alive)
	g.Set(4, 4, 7)
	if v, _ := g.Get(4, 4); v != Alive {
		t.Fatalf("non-zero state stored as %d, expected %d", v, Alive)
	}
	g.Set(1, 2, Dead)
	if g.Alive(1, 2) {
		t.Fatal("cell (1,2) should be dead after clearing")
	}
	if g.Cells()[g.Index(4, 4)] != Alive {
		t.Fatal("row-major index does not match Set")
	}
}

func TestOutOfBoundsSetIsNoop(t *testing.T) {
	g := NewGrid(6, 4)
	seed(g, Coord{1, 1}, Coord{5, 3})
	before := slices.Clone(g.Cells())

	for _, c := range []Coord{{-1, 0}, {0, -1}, {6, 0}, {0, 4}, {6, 4}, {-10, 99}} {
		g.Set(c.X, c.Y, Alive)
	}

	if !slices.Equal(before, g.Cells()) {
		t.Fatal("out-of-bounds Set modified in-bounds cells")
	}
}

func TestCountAliveNeighborsSingleCell(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(2, 2, Alive)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			dx, dy := x-2, y-2
			adjacent := (dx != 0 || dy != 0) && dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
			want := 0
			if adjacent {
				want = 1
			}
			if got := g.CountAliveNeighbors(x, y); got != want {
				t.Fatalf("neighbors(%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
	}
}

func TestCountAliveNeighborsAtEdges(t *testing.T) {
	g := NewGrid(3, 3)
	for i := range g.Cells() {
		g.Cells()[i] = Alive
	}
	cases := map[Coord]int{
		{0, 0}: 3,
		{1, 0}: 5,
		{1, 1}: 8,
		{2, 2}: 3,
		{2, 1}: 5,
	}
	for c, want := range cases {
		if got := g.CountAliveNeighbors(c.X, c.Y); got != want {
			t.Fatalf("neighbors(%d,%d) = %d, expected %d", c.X, c.Y, got, want)
		}
	}
}

func TestNextStateRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := Dead
		if n == 2 || n == 3 {
			wantAlive = Alive
		}
		if got := NextState(Alive, n); got != wantAlive {
			t.Fatalf("NextState(alive,%d) = %d, expected %d", n, got, wantAlive)
		}
		wantDead := Dead
		if n == 3 {
			wantDead = Alive
		}
		if got := NextState(Dead, n); got != wantDead {
			t.Fatalf("NextState(dead,%d) = %d, expected %d", n, got, wantDead)
		}
	}
}

func TestStepLeavesSourceUntouched(t *testing.T) {
	g := NewGrid(5, 5)
	seed(g, Coord{2, 1}, Coord{2, 2}, Coord{2, 3})
	before := slices.Clone(g.Cells())
	next := NewGrid(5, 5)
	for i := range next.Cells() {
		next.Cells()[i] = Alive
	}

	g.Step(next)

	if !slices.Equal(before, g.Cells()) {
		t.Fatal("Step mutated the source grid")
	}
	expectAlive(t, next, Coord{1, 2}, Coord{2, 2}, Coord{3, 2})
}

func TestBlinkerOscillation(t *testing.T) {
	a, b := NewGrid(5, 5), NewGrid(5, 5)
	seed(a, Coord{2, 1}, Coord{2, 2}, Coord{2, 3})

	a.Step(b)
	expectAlive(t, b, Coord{1, 2}, Coord{2, 2}, Coord{3, 2})

	b.Step(a)
	expectAlive(t, a, Coord{2, 1}, Coord{2, 2}, Coord{2, 3})
}

func TestGliderTranslatesEveryFourSteps(t *testing.T) {
	glider := []Coord{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	a, b := NewGrid(10, 10), NewGrid(10, 10)
	seed(a, glider...)

	for i := 0; i < 4; i++ {
		a.Step(b)
		a, b = b, a
	}

	want := make([]Coord, len(glider))
	for i, c := range glider {
		want[i] = c.Add(Coord{X: 1, Y: 1})
	}
	expectAlive(t, a, want...)
}

func TestBlockIsStillLife(t *testing.T) {
	for _, n := range []int{4, 6, 9} {
		a, b := NewGrid(n, n), NewGrid(n, n)
		block := []Coord{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
		seed(a, block...)
		for i := 0; i < 10; i++ {
			a.Step(b)
			a, b = b, a
			expectAlive(t, a, block...)
		}
	}
}

func TestCornerBlockDoesNotWrap(t *testing.T) {
	// On a toroidal board these cells would be neighbours of the opposite
	// corner; on a bounded board the L-shape simply becomes a block.
	a, b := NewGrid(6, 6), NewGrid(6, 6)
	seed(a, Coord{0, 0}, Coord{1, 0}, Coord{0, 1})
	a.Step(b)
	expectAlive(t, b, Coord{0, 0}, Coord{1, 0}, Coord{0, 1}, Coord{1, 1})
}

func TestStepSizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched step target")
		}
	}()
	NewGrid(3, 3).Step(NewGrid(3, 4))
}

func TestStepParallelMatchesStep(t *testing.T) {
	src := NewGrid(37, 23)
	NewRNG(7).FillDensity(src, 0.35)

	serial := NewGrid(37, 23)
	src.Step(serial)

	for _, workers := range []int{0, 1, 2, 3, 8, 23, 64} {
		parallel := NewGrid(37, 23)
		src.StepParallel(parallel, workers)
		if !slices.Equal(serial.Cells(), parallel.Cells()) {
			t.Fatalf("StepParallel with %d workers diverged from Step", workers)
		}
	}
}

func TestPopulationAndClear(t *testing.T) {
	g := NewGrid(4, 4)
	seed(g, Coord{0, 0}, Coord{3, 3})
	if g.Population() != 2 {
		t.Fatalf("population = %d, expected 2", g.Population())
	}
	g.Clear()
	if g.Population() != 0 {
		t.Fatalf("population after Clear = %d", g.Population())
	}
}
