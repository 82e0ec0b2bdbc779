package pointer

import (
	"math"

	"gol-paint/internal/core"
)

// ClipLine trims the segment from..to to the cell rectangle [0,w)x[0,h)
// using Liang-Barsky clipping. It reports false when no part of the segment
// lies on the grid. Segments entirely inside come back unchanged.
func ClipLine(from, to core.Point, w, h int) (core.Point, core.Point, bool) {
	if w <= 0 || h <= 0 {
		return from, to, false
	}
	x0, y0 := float64(from.X), float64(from.Y)
	dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
	maxX, maxY := float64(w-1), float64(h-1)

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return from, to, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return from, to, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return from, to, false
			}
			t1 = min(t1, r)
		}
	}

	a := from
	if t0 > 0 {
		a = clampPt(x0+t0*dx, y0+t0*dy, w, h)
	}
	b := to
	if t1 < 1 {
		b = clampPt(x0+t1*dx, y0+t1*dy, w, h)
	}
	return a, b, true
}

func clampPt(x, y float64, w, h int) core.Point {
	cx := min(max(int(math.Round(x)), 0), w-1)
	cy := min(max(int(math.Round(y)), 0), h-1)
	return core.Pt(cx, cy)
}
