package core

import (
	"slices"
	"testing"
)

func TestSetAliveGetRoundTrip(t *testing.T) {
	g := NewGrid(7, 5)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if !g.SetAlive(x, y) {
				t.Fatalf("SetAlive(%d,%d) rejected in-bounds cell", x, y)
			}
			if got := g.Get(x, y); got != 1 {
				t.Fatalf("Get(%d,%d) = %d after SetAlive, want 1", x, y, got)
			}
		}
	}
}

func TestOutOfBoundsSetAliveLeavesGridUnchanged(t *testing.T) {
	g := NewGrid(4, 3)
	g.SetAlive(1, 1)
	before := append([]uint8(nil), g.Cells()...)

	for _, p := range []Point{Pt(-1, 0), Pt(0, -1), Pt(4, 0), Pt(0, 3), Pt(100, 100), Pt(-5, 2)} {
		if g.SetAlive(p.X, p.Y) {
			t.Fatalf("SetAlive(%d,%d) accepted out-of-range cell", p.X, p.Y)
		}
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("out-of-range SetAlive mutated the grid")
	}
}

func TestGetOutOfRangeIsDead(t *testing.T) {
	g := NewGrid(2, 2)
	for i := range g.Cells() {
		g.Cells()[i] = 1
	}
	for _, p := range []Point{Pt(-1, -1), Pt(2, 0), Pt(0, 2), Pt(-1, 1)} {
		if got := g.Get(p.X, p.Y); got != 0 {
			t.Fatalf("Get(%d,%d) = %d, want 0", p.X, p.Y, got)
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("dims = %dx%d, want 1x1", g.W, g.H)
	}
	if len(g.Cells()) != 1 || len(g.Scratch()) != 1 {
		t.Fatalf("buffers = %d/%d, want 1/1", len(g.Cells()), len(g.Scratch()))
	}
}

func TestResizePreserveCopiesOverlap(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetAlive(0, 0)
	g.SetAlive(3, 0)
	g.SetAlive(1, 2)
	g.SetAlive(2, 3)

	g.Resize(3, 6, true)
	if g.W != 3 || g.H != 6 {
		t.Fatalf("dims = %dx%d, want 3x6", g.W, g.H)
	}
	if len(g.Cells()) != 18 || len(g.Scratch()) != 18 {
		t.Fatalf("buffer lengths %d/%d, want 18", len(g.Cells()), len(g.Scratch()))
	}
	want := map[Point]bool{{0, 0}: true, {1, 2}: true, {2, 3}: true}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.Get(x, y) == 1
			if alive != want[Pt(x, y)] {
				t.Fatalf("cell (%d,%d) alive=%v, want %v", x, y, alive, want[Pt(x, y)])
			}
		}
	}
}

func TestResizeWithoutPreserveClears(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetAlive(1, 1)
	g.Resize(5, 5, false)
	if g.Population() != 0 {
		t.Fatalf("population = %d after clearing resize, want 0", g.Population())
	}
	g.Resize(0, 0, true)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("dims = %dx%d, want clamped 1x1", g.W, g.H)
	}
}

func TestReplaceSwapsBuffers(t *testing.T) {
	g := NewGrid(2, 2)
	cur := g.Cells()
	next := g.Scratch()
	next[3] = 1

	if !g.Replace(next) {
		t.Fatal("Replace rejected scratch buffer")
	}
	if g.Get(1, 1) != 1 {
		t.Fatal("replaced generation not visible")
	}
	if &g.Scratch()[0] != &cur[0] {
		t.Fatal("old generation was not recycled as scratch")
	}
	if g.Replace(make([]uint8, 3)) {
		t.Fatal("Replace accepted buffer of wrong length")
	}
}

func TestClearAndPopulation(t *testing.T) {
	g := NewGrid(3, 2)
	g.SetAlive(0, 0)
	g.SetAlive(2, 1)
	if g.Population() != 2 {
		t.Fatalf("population = %d, want 2", g.Population())
	}
	g.Clear()
	if g.Population() != 0 {
		t.Fatalf("population = %d after Clear, want 0", g.Population())
	}
}
