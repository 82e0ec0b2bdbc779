// Package life implements the B3/S23 rule over a bounded, non-wrapping grid.
package life

import "gol-paint/internal/core"

// CountLiveNeighbors sums the Moore neighborhood of (x, y). Cells beyond the
// grid edge count as dead; there is no wraparound.
func CountLiveNeighbors(g *core.Grid, x, y int) int {
	w, h := g.W, g.H
	cells := g.Cells()
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			neighbors += int(cells[ny*w+nx])
		}
	}
	return neighbors
}

// Survives reports the B3/S23 outcome for a cell with the given state and
// neighbor count.
func Survives(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// NextGeneration writes the generation following g into g's scratch buffer
// and returns it. The current generation is left untouched; install the
// result with g.Replace.
func NextGeneration(g *core.Grid) []uint8 {
	w, h := g.W, g.H
	cur := g.Cells()
	nxt := g.Scratch()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = 0
			if Survives(cur[idx] != 0, CountLiveNeighbors(g, x, y)) {
				nxt[idx] = 1
			}
		}
	}
	return nxt
}

// Advance steps g forward by one generation in place.
func Advance(g *core.Grid) {
	g.Replace(NextGeneration(g))
}
