package core

// Grid stores live/dead cell state for a bounded board in row-major order.
// It is double-buffered: the current generation plus a scratch buffer of the
// same shape that rule evaluation writes into before Replace swaps them.
type Grid struct {
	W, H int
	cur  []uint8
	nxt  []uint8
}

// NewGrid allocates an all-dead grid. Non-positive dimensions are clamped to 1.
func NewGrid(w, h int) *Grid {
	w, h = clampDims(w, h)
	return &Grid{W: w, H: h, cur: make([]uint8, w*h), nxt: make([]uint8, w*h)}
}

func clampDims(w, h int) (int, int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the current generation so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.cur }

// Scratch exposes the buffer the next generation should be written into.
func (g *Grid) Scratch() []uint8 { return g.nxt }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Get returns 1 for a live cell and 0 otherwise. Coordinates outside the grid
// read as dead.
func (g *Grid) Get(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.cur[g.Index(x, y)]
}

// SetAlive marks (x, y) live. Out-of-range coordinates are ignored and false
// is returned.
func (g *Grid) SetAlive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cur[g.Index(x, y)] = 1
	return true
}

// Replace installs next as the current generation. The previous buffer is kept
// as scratch for the following generation. Buffers of the wrong length are
// rejected.
func (g *Grid) Replace(next []uint8) bool {
	if len(next) != g.W*g.H {
		return false
	}
	g.cur, g.nxt = next, g.cur
	return true
}

// Resize reallocates both buffers for the new dimensions. With preserve set
// the overlapping region anchored at the origin is copied over, otherwise the
// grid starts all dead.
func (g *Grid) Resize(w, h int, preserve bool) {
	w, h = clampDims(w, h)
	cur := make([]uint8, w*h)
	if preserve {
		cw := min(w, g.W)
		ch := min(h, g.H)
		for y := 0; y < ch; y++ {
			copy(cur[y*w:y*w+cw], g.cur[y*g.W:y*g.W+cw])
		}
	}
	g.W, g.H = w, h
	g.cur = cur
	g.nxt = make([]uint8, w*h)
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = 0
	}
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		if c != 0 {
			n++
		}
	}
	return n
}
