package pointer

import (
	"slices"
	"testing"

	"gol-paint/internal/core"
)

func checkPath(t *testing.T, path []core.Point, from, to core.Point) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("empty path")
	}
	if path[0] != from || path[len(path)-1] != to {
		t.Fatalf("path endpoints %v..%v, want %v..%v", path[0], path[len(path)-1], from, to)
	}
	want := max(abs(to.X-from.X), abs(to.Y-from.Y)) + 1
	if len(path) != want {
		t.Fatalf("len(path) = %d, want %d (%v)", len(path), want, path)
	}
	seen := map[core.Point]bool{}
	for i, p := range path {
		if seen[p] {
			t.Fatalf("cell %v repeated in %v", p, path)
		}
		seen[p] = true
		if i == 0 {
			continue
		}
		q := path[i-1]
		if abs(p.X-q.X) > 1 || abs(p.Y-q.Y) > 1 {
			t.Fatalf("gap between %v and %v", q, p)
		}
	}
}

func TestInterpolateLineShallow(t *testing.T) {
	path := InterpolateLine(core.Pt(0, 0), core.Pt(3, 1))
	checkPath(t, path, core.Pt(0, 0), core.Pt(3, 1))
	if len(path) != 4 {
		t.Fatalf("len = %d, want 4", len(path))
	}
}

func TestInterpolateLineAllOctants(t *testing.T) {
	origin := core.Pt(5, 5)
	targets := []core.Point{
		core.Pt(5, 5), core.Pt(9, 5), core.Pt(1, 5), core.Pt(5, 9), core.Pt(5, 1),
		core.Pt(12, 8), core.Pt(8, 12), core.Pt(-2, 8), core.Pt(2, 12),
		core.Pt(12, 2), core.Pt(8, -2), core.Pt(-2, 2), core.Pt(2, -2),
		core.Pt(9, 9), core.Pt(1, 1), core.Pt(9, 1), core.Pt(1, 9),
	}
	for _, to := range targets {
		checkPath(t, InterpolateLine(origin, to), origin, to)
	}
}

func TestInterpolateLineReverseCoversSameLength(t *testing.T) {
	a, b := core.Pt(-3, 4), core.Pt(7, -1)
	fwd := InterpolateLine(a, b)
	rev := InterpolateLine(b, a)
	if len(fwd) != len(rev) {
		t.Fatalf("forward %d cells, reverse %d cells", len(fwd), len(rev))
	}
}

func TestAppendLineReusesBuffer(t *testing.T) {
	buf := make([]core.Point, 0, 16)
	out := AppendLine(buf, core.Pt(0, 0), core.Pt(2, 0))
	if !slices.Equal(out, []core.Point{core.Pt(0, 0), core.Pt(1, 0), core.Pt(2, 0)}) {
		t.Fatalf("AppendLine = %v", out)
	}
	if &out[0] != &buf[:1][0] {
		t.Fatal("AppendLine reallocated a buffer with spare capacity")
	}
}

func TestToCell(t *testing.T) {
	geom := core.NewGeometry(800, 600, 100, 74)
	cases := []struct {
		px, py float64
		want   core.Point
	}{
		{0, 0, core.Pt(0, 0)},
		{7.99, 8.1, core.Pt(0, 0)},
		{8, 8.2, core.Pt(1, 1)},
		{799.9, 599.9, core.Pt(99, 73)},
		{800, 600, core.Pt(100, 74)},
		{-0.5, -20, core.Pt(-1, -3)},
	}
	for _, tc := range cases {
		if got := ToCell(tc.px, tc.py, geom); got != tc.want {
			t.Fatalf("ToCell(%v,%v) = %v, want %v", tc.px, tc.py, got, tc.want)
		}
	}
}

func TestToCellMonotonic(t *testing.T) {
	geom := core.NewGeometry(333, 200, 40, 24)
	prev := ToCell(0, 0, geom).X
	for px := 0.0; px <= 333; px += 0.37 {
		x := ToCell(px, 10, geom).X
		if x < prev {
			t.Fatalf("ToCell x decreased from %d to %d at px=%v", prev, x, px)
		}
		prev = x
	}
}

func TestTrailPath(t *testing.T) {
	var tr Trail
	if tr.Active() {
		t.Fatal("zero trail is active")
	}
	tr.Begin()
	first := tr.Path(nil, core.Pt(2, 2), 10, 10)
	if !slices.Equal(first, []core.Point{core.Pt(2, 2)}) {
		t.Fatalf("first path = %v", first)
	}
	second := tr.Path(nil, core.Pt(5, 3), 10, 10)
	checkPath(t, second, core.Pt(2, 2), core.Pt(5, 3))

	tr.Begin()
	if _, ok := tr.Previous(); ok {
		t.Fatal("Begin kept previous cell")
	}
	tr.Path(nil, core.Pt(1, 1), 10, 10)
	tr.End()
	if tr.Active() {
		t.Fatal("trail active after End")
	}
	if _, ok := tr.Previous(); ok {
		t.Fatal("End kept previous cell")
	}
}

func TestTrailPathFarSample(t *testing.T) {
	var tr Trail
	tr.Begin()
	tr.Path(nil, core.Pt(0, 0), 100, 74)
	path := tr.Path(nil, core.Pt(maxCoord, 0), 100, 74)
	checkPath(t, path, core.Pt(0, 0), core.Pt(99, 0))
	if prev, _ := tr.Previous(); prev != core.Pt(maxCoord, 0) {
		t.Fatalf("previous = %v, want the unclipped sample", prev)
	}

	back := tr.Path(nil, core.Pt(50, 0), 100, 74)
	checkPath(t, back, core.Pt(99, 0), core.Pt(50, 0))

	if off := tr.Path(nil, core.Pt(-5, -5), 100, 74); len(off) != 0 {
		t.Fatalf("off-grid path = %v", off)
	}
}

func TestClipLine(t *testing.T) {
	cases := []struct {
		from, to core.Point
		a, b     core.Point
		ok       bool
	}{
		{core.Pt(1, 1), core.Pt(8, 5), core.Pt(1, 1), core.Pt(8, 5), true},
		{core.Pt(4, 4), core.Pt(4, 4), core.Pt(4, 4), core.Pt(4, 4), true},
		{core.Pt(-10, 3), core.Pt(20, 3), core.Pt(0, 3), core.Pt(9, 3), true},
		{core.Pt(3, -1000), core.Pt(3, 1000), core.Pt(3, 0), core.Pt(3, 9), true},
		{core.Pt(-5, -5), core.Pt(15, 15), core.Pt(0, 0), core.Pt(9, 9), true},
		{core.Pt(-5, -5), core.Pt(-1, 20), core.Point{}, core.Point{}, false},
		{core.Pt(12, 12), core.Pt(12, 12), core.Point{}, core.Point{}, false},
		{core.Pt(0, -1), core.Pt(20, -1), core.Point{}, core.Point{}, false},
	}
	for _, tc := range cases {
		a, b, ok := ClipLine(tc.from, tc.to, 10, 10)
		if ok != tc.ok {
			t.Fatalf("ClipLine(%v,%v) ok = %v, want %v", tc.from, tc.to, ok, tc.ok)
		}
		if ok && (a != tc.a || b != tc.b) {
			t.Fatalf("ClipLine(%v,%v) = %v..%v, want %v..%v", tc.from, tc.to, a, b, tc.a, tc.b)
		}
	}
}

func TestToCellSaturates(t *testing.T) {
	geom := core.NewGeometry(800, 600, 100, 74)
	if got := ToCell(1e300, -1e300, geom); got != core.Pt(maxCoord, -maxCoord) {
		t.Fatalf("ToCell(huge) = %v", got)
	}
}
