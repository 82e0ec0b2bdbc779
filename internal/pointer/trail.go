package pointer

import "gol-paint/internal/core"

// Trail remembers the last cell touched during an active pointer gesture.
type Trail struct {
	active  bool
	hasPrev bool
	prev    core.Point
}

// Begin starts a new gesture with no previous cell.
func (t *Trail) Begin() {
	t.active = true
	t.hasPrev = false
}

// End finishes the gesture and forgets the previous cell.
func (t *Trail) End() {
	t.active = false
	t.hasPrev = false
}

// Reset forgets the previous cell but keeps the gesture state.
func (t *Trail) Reset() { t.hasPrev = false }

// Active reports whether a gesture is in progress.
func (t *Trail) Active() bool { return t.active }

// Previous returns the last visited cell, if any.
func (t *Trail) Previous() (core.Point, bool) { return t.prev, t.hasPrev }

// Path appends the on-grid cells between the previous cell and next for a
// w*h grid, and records next as the previous cell. The first move of a
// gesture yields just next. Only the clipped segment is walked, so a sample
// far off the surface costs no more than one crossing the grid.
func (t *Trail) Path(dst []core.Point, next core.Point, w, h int) []core.Point {
	from := next
	if t.hasPrev {
		from = t.prev
	}
	t.prev = next
	t.hasPrev = true
	a, b, ok := ClipLine(from, next, w, h)
	if !ok {
		return dst
	}
	return AppendLine(dst, a, b)
}
