package life

import (
	"testing"

	"gol-paint/internal/core"
)

func liveSet(g *core.Grid) map[core.Point]bool {
	out := map[core.Point]bool{}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Get(x, y) == 1 {
				out[core.Pt(x, y)] = true
			}
		}
	}
	return out
}

func expectCells(t *testing.T, g *core.Grid, want map[core.Point]bool, label string) {
	t.Helper()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.Get(x, y) == 1
			if alive != want[core.Pt(x, y)] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, x, y, alive, want[core.Pt(x, y)])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.SetAlive(2, 1)
	g.SetAlive(2, 2)
	g.SetAlive(2, 3)

	Advance(g)
	expectCells(t, g, map[core.Point]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "first step")

	Advance(g)
	expectCells(t, g, map[core.Point]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "second step")
}

func TestGliderTranslatesAfterFourGenerations(t *testing.T) {
	g := core.NewGrid(12, 12)
	glider := []core.Point{core.Pt(1, 0), core.Pt(2, 1), core.Pt(0, 2), core.Pt(1, 2), core.Pt(2, 2)}
	for _, p := range glider {
		g.SetAlive(p.X, p.Y)
	}

	for i := 0; i < 4; i++ {
		Advance(g)
	}

	want := map[core.Point]bool{}
	for _, p := range glider {
		want[core.Pt(p.X+1, p.Y+1)] = true
	}
	expectCells(t, g, want, "glider after 4 generations")
}

func TestIsolatedCellDies(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.SetAlive(1, 1)
	Advance(g)
	if g.Population() != 0 {
		t.Fatalf("population = %d, want 0", g.Population())
	}
}

func TestNoWraparoundAtEdges(t *testing.T) {
	// A vertical blinker on the left edge would feed the right edge on a torus.
	g := core.NewGrid(4, 3)
	g.SetAlive(0, 0)
	g.SetAlive(0, 1)
	g.SetAlive(0, 2)

	if n := CountLiveNeighbors(g, 3, 1); n != 0 {
		t.Fatalf("right edge sees %d neighbors across the boundary, want 0", n)
	}
	if n := CountLiveNeighbors(g, 0, 0); n != 1 {
		t.Fatalf("corner neighbors = %d, want 1", n)
	}

	Advance(g)
	expectCells(t, g, map[core.Point]bool{{0, 1}: true, {1, 1}: true}, "edge blinker")
}

func TestCountLiveNeighborsFullGrid(t *testing.T) {
	g := core.NewGrid(3, 3)
	for i := range g.Cells() {
		g.Cells()[i] = 1
	}
	cases := map[core.Point]int{
		{1, 1}: 8,
		{0, 0}: 3,
		{1, 0}: 5,
		{2, 2}: 3,
		{0, 1}: 5,
	}
	for p, want := range cases {
		if got := CountLiveNeighbors(g, p.X, p.Y); got != want {
			t.Fatalf("CountLiveNeighbors(%d,%d) = %d, want %d", p.X, p.Y, got, want)
		}
	}
}

func TestNextGenerationDoesNotMutateCurrent(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.SetAlive(1, 2)
	g.SetAlive(2, 2)
	g.SetAlive(3, 2)
	before := liveSet(g)

	NextGeneration(g)
	after := liveSet(g)
	if len(before) != len(after) {
		t.Fatalf("current generation changed: %v -> %v", before, after)
	}
	for p := range before {
		if !after[p] {
			t.Fatalf("cell %v cleared by NextGeneration", p)
		}
	}
}

func TestTinyGridsStep(t *testing.T) {
	for _, size := range []core.Size{{W: 1, H: 1}, {W: 1, H: 5}, {W: 5, H: 1}, {W: 2, H: 2}} {
		g := core.NewGrid(size.W, size.H)
		for i := range g.Cells() {
			g.Cells()[i] = 1
		}
		Advance(g)
		Advance(g)
	}
}

func TestSurvives(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Survives(true, n); got != wantAlive {
			t.Fatalf("Survives(true,%d) = %v", n, got)
		}
		if got := Survives(false, n); got != (n == 3) {
			t.Fatalf("Survives(false,%d) = %v", n, got)
		}
	}
}
