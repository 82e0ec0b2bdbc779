// Package render draws grid state onto pixel surfaces.
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Surface is the drawing target the Rasterizer paints on. Implementations
// never fail; drawing outside the surface is clipped.
type Surface interface {
	Resize(pixelW, pixelH int)
	Fill(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
}

// RGBASurface is an in-memory Surface backed by an *image.RGBA.
type RGBASurface struct {
	img *image.RGBA
}

// NewRGBASurface allocates a surface of the given pixel size.
func NewRGBASurface(w, h int) *RGBASurface {
	s := &RGBASurface{}
	s.Resize(w, h)
	return s
}

// Resize reallocates the backing image when the size changes.
func (s *RGBASurface) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if s.img != nil && s.img.Rect.Dx() == w && s.img.Rect.Dy() == h {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Fill paints the whole surface.
func (s *RGBASurface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect paints the pixels covered by the rectangle. Edges are rounded so
// neighboring cells with fractional sizes tile without gaps or overlap.
func (s *RGBASurface) FillRect(x, y, w, h float64, c color.Color) {
	r := pixelRect(x, y, w, h)
	draw.Draw(s.img, r.Intersect(s.img.Rect), image.NewUniform(c), image.Point{}, draw.Src)
}

// Image exposes the backing image.
func (s *RGBASurface) Image() *image.RGBA { return s.img }

func pixelRect(x, y, w, h float64) image.Rectangle {
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := int(math.Round(x+w)), int(math.Round(y+h))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return image.Rect(x0, y0, x1, y1)
}
