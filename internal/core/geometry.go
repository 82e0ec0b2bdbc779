package core

// DefaultDivisor is the number of device pixels per grid cell.
const DefaultDivisor = 8

// Geometry relates a grid to the pixel surface it is drawn on.
type Geometry struct {
	PixelW, PixelH int
	W, H           int
}

// GridDims derives grid dimensions for a surface: one cell per divisor pixels,
// rounded down to an even count and never below 1.
func GridDims(pixelW, pixelH, divisor int) (int, int) {
	if divisor <= 0 {
		divisor = DefaultDivisor
	}
	w := evenFloor(pixelW / divisor)
	h := evenFloor(pixelH / divisor)
	return w, h
}

func evenFloor(n int) int {
	n -= n % 2
	if n < 1 {
		return 1
	}
	return n
}

// NewGeometry builds the geometry for a grid of w*h cells drawn on a surface
// of pixelW*pixelH. All values are clamped to at least 1 so ratios stay positive.
func NewGeometry(pixelW, pixelH, w, h int) Geometry {
	if pixelW <= 0 {
		pixelW = 1
	}
	if pixelH <= 0 {
		pixelH = 1
	}
	w, h = clampDims(w, h)
	return Geometry{PixelW: pixelW, PixelH: pixelH, W: w, H: h}
}

// RatioX is the width of one cell in pixels.
func (g Geometry) RatioX() float64 { return float64(g.PixelW) / float64(g.W) }

// RatioY is the height of one cell in pixels.
func (g Geometry) RatioY() float64 { return float64(g.PixelH) / float64(g.H) }
