// Package term runs the simulation in a terminal, one grid cell per
// character cell, with mouse painting.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Surface draws on a tcell screen. Character cells act as pixels.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps screen.
func NewSurface(screen tcell.Screen) *Surface { return &Surface{screen: screen} }

// Resize is a no-op; the terminal owns its size.
func (s *Surface) Resize(int, int) {}

// Fill paints every character cell.
func (s *Surface) Fill(c color.Color) {
	s.screen.Fill(' ', styleFor(c))
}

// FillRect paints the character cells covered by the rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	style := styleFor(c)
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := int(math.Round(x+w)), int(math.Round(y+h))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	sw, sh := s.screen.Size()
	for cy := max(y0, 0); cy < min(y1, sh); cy++ {
		for cx := max(x0, 0); cx < min(x1, sw); cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

func styleFor(c color.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.FromImageColor(c))
}
