//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Update refreshes the panel and handles a left click on it. It reports
// whether the click landed on the panel.
func (h *HUD) Update(screenW int) bool {
	h.Refresh(screenW)
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return h.Press(ebiten.CursorPosition())
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	ox := float32(h.originX)
	vector.DrawFilledRect(screen, ox, 0, panelWidth, float32(h.height), color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(screen, "Game of Life", face, h.originX+panelPadding, y, titleColor)
	y += 6
	for _, group := range h.snapshot.Groups {
		y += lineHeight
		text.Draw(screen, group.Name, face, h.originX+panelPadding, y, dimColor)
		for _, p := range group.Params {
			y += lineHeight
			text.Draw(screen, p.Label, face, h.originX+panelPadding*2, y, labelColor)
			w := text.BoundString(face, p.Value).Dx()
			text.Draw(screen, p.Value, face, h.originX+panelWidth-panelPadding-w, y, labelColor)
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		text.Draw(screen, state.control.Label, face, h.originX+panelPadding, state.top+labelBaseline, labelColor)
		h.drawButton(screen, state.minusRect, "-", state.control.Clamp(state.value-1) != state.value)
		h.drawButton(screen, state.plusRect, "+", state.control.Clamp(state.value+1) != state.value)
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	r := rect.Add(image.Pt(h.originX, 0))
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, fg)
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)
