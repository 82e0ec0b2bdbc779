// Package pointer maps device coordinates onto grid cells and interpolates
// pointer motion into gap-free lines of cells.
package pointer

import (
	"math"

	"gol-paint/internal/core"
)

// ToCell maps a device point to the grid cell beneath it. The result is not
// clamped to the grid; points outside the surface yield out-of-range cells.
// Coordinates beyond ±maxCoord saturate, and NaN maps to -1.
func ToCell(px, py float64, geom core.Geometry) core.Point {
	geom = core.NewGeometry(geom.PixelW, geom.PixelH, geom.W, geom.H)
	x := math.Floor(px * float64(geom.W) / float64(geom.PixelW))
	y := math.Floor(py * float64(geom.H) / float64(geom.PixelH))
	return core.Pt(saturate(x), saturate(y))
}

// maxCoord bounds cell coordinates so integer conversion and line clipping
// stay exact.
const maxCoord = 1 << 30

func saturate(v float64) int {
	switch {
	case math.IsNaN(v):
		return -1
	case v > maxCoord:
		return maxCoord
	case v < -maxCoord:
		return -maxCoord
	}
	return int(v)
}

// InterpolateLine returns every cell on the Bresenham line from from to to,
// both endpoints included, ordered from from.
func InterpolateLine(from, to core.Point) []core.Point {
	return AppendLine(nil, from, to)
}

// AppendLine is InterpolateLine appending into dst.
func AppendLine(dst []core.Point, from, to core.Point) []core.Point {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}
	err := dx + dy
	x, y := from.X, from.Y
	for {
		dst = append(dst, core.Pt(x, y))
		if x == to.X && y == to.Y {
			return dst
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
