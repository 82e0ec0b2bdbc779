package render

import (
	"image/color"

	"gol-paint/internal/core"
)

// Rasterizer draws live cells as filled rectangles on a Surface.
type Rasterizer struct {
	surface    Surface
	palette    Palette
	paintScale float64
}

// NewRasterizer returns a Rasterizer drawing on s with palette p.
func NewRasterizer(s Surface, p Palette) *Rasterizer {
	return &Rasterizer{surface: s, palette: p, paintScale: 1}
}

// Palette returns the active colors.
func (r *Rasterizer) Palette() Palette { return r.palette }

// SetPaintScale sets how much RenderCell enlarges a cell around its center.
// Values below 1 are treated as 1.
func (r *Rasterizer) SetPaintScale(scale float64) {
	if scale < 1 {
		scale = 1
	}
	r.paintScale = scale
}

// PaintScale returns the RenderCell enlargement factor.
func (r *Rasterizer) PaintScale() float64 { return r.paintScale }

// Resize matches the surface to the geometry's pixel size.
func (r *Rasterizer) Resize(geom core.Geometry) {
	r.surface.Resize(geom.PixelW, geom.PixelH)
}

// RenderFull clears the surface and redraws every live cell.
func (r *Rasterizer) RenderFull(g *core.Grid, geom core.Geometry) {
	r.surface.Fill(r.palette.Background)
	rx, ry := geom.RatioX(), geom.RatioY()
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		row := cells[y*g.W : (y+1)*g.W]
		for x, c := range row {
			if c == 0 {
				continue
			}
			r.surface.FillRect(float64(x)*rx, float64(y)*ry, rx, ry, r.palette.Foreground)
		}
	}
}

// RenderCell draws a single cell in c without touching its neighbors' state.
func (r *Rasterizer) RenderCell(x, y int, geom core.Geometry, c color.Color) {
	rx, ry := geom.RatioX(), geom.RatioY()
	w, h := rx*r.paintScale, ry*r.paintScale
	px := float64(x)*rx - (w-rx)/2
	py := float64(y)*ry - (h-ry)/2
	r.surface.FillRect(px, py, w, h, c)
}
