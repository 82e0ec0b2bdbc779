package render

import (
	"image"
	"image/color"

	"gol-paint/internal/core"

	"golang.org/x/image/draw"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Snapshot renders the grid at one pixel per cell, enlarged by scale with
// nearest-neighbor sampling when scale > 1.
func Snapshot(g *core.Grid, p Palette, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	fillBinaryRGBA(img.Pix, g.Cells(), p.Foreground, p.Background)
	if scale <= 1 {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, g.W*scale, g.H*scale))
	draw.NearestNeighbor.Scale(out, out.Rect, img, img.Rect, draw.Src, nil)
	return out
}
