//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface keeps an offscreen ebiten image between frames so single
// painted cells can be drawn without a full redraw.
type EbitenSurface struct {
	img *ebiten.Image
}

// NewEbitenSurface allocates an offscreen image of the given size.
func NewEbitenSurface(w, h int) *EbitenSurface {
	s := &EbitenSurface{}
	s.Resize(w, h)
	return s
}

// Resize replaces the offscreen image when the size changes.
func (s *EbitenSurface) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		s.img.Dispose()
	}
	s.img = ebiten.NewImage(w, h)
}

// Fill paints the whole surface.
func (s *EbitenSurface) Fill(c color.Color) { s.img.Fill(c) }

// FillRect paints an axis-aligned rectangle.
func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

// Blit draws the offscreen image onto dst.
func (s *EbitenSurface) Blit(dst *ebiten.Image) {
	dst.DrawImage(s.img, &ebiten.DrawImageOptions{})
}
