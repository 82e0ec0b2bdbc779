package ui

import (
	"image"
	"strconv"

	"gol-paint/internal/core"
)

// Source is what the HUD reads from and adjusts.
type Source interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
}

// HUD is a parameter panel anchored to the top-right corner.
type HUD struct {
	src      Source
	visible  bool
	snapshot core.ParameterSnapshot
	controls []hudControlState

	originX int
	height  int
}

// NewHUD constructs a visible HUD for the provided source.
func NewHUD(src Source) *HUD {
	h := &HUD{src: src, visible: true}
	for _, ctrl := range src.ParameterControls() {
		h.controls = append(h.controls, hudControlState{control: ctrl})
	}
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Refresh re-reads the source and lays the panel out for a screen screenW
// pixels wide.
func (h *HUD) Refresh(screenW int) {
	if h == nil || !h.visible {
		return
	}
	h.snapshot = h.src.Parameters()
	h.originX = screenW - panelWidth
	h.layout()
}

// Contains reports whether the screen point (x, y) lies on the visible panel.
func (h *HUD) Contains(x, y int) bool {
	if h == nil || !h.visible {
		return false
	}
	return x >= h.originX && y >= 0 && y < h.height
}

// Press handles a press at screen point (x, y), adjusting a control when it
// hits a +/- button. It reports whether the press landed on the panel, in
// which case it must not start a paint gesture.
func (h *HUD) Press(x, y int) bool {
	if !h.Contains(x, y) {
		return false
	}
	px := x - h.originX
	for i := range h.controls {
		state := &h.controls[i]
		if pointInRect(px, y, state.minusRect) {
			h.adjust(state, -1)
			break
		}
		if pointInRect(px, y, state.plusRect) {
			h.adjust(state, 1)
			break
		}
	}
	return true
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.value + direction*step)
	if target == state.value {
		return
	}
	h.src.SetIntParameter(state.control.Key, target)
	state.value = target
}

func (h *HUD) layout() {
	y := panelPadding + headerBaseline + 6
	for _, group := range h.snapshot.Groups {
		y += lineHeight + len(group.Params)*lineHeight
	}
	for i := range h.controls {
		state := &h.controls[i]
		if p, ok := h.snapshot.Lookup(state.control.Key); ok {
			if v, err := strconv.Atoi(p.Value); err == nil {
				state.value = v
			}
		}
		top := y + i*controlHeight
		buttonY := top + (controlHeight-buttonSize)/2
		state.top = top
		state.plusRect = image.Rect(panelWidth-panelPadding-buttonSize, buttonY, panelWidth-panelPadding, buttonY+buttonSize)
		state.minusRect = image.Rect(state.plusRect.Min.X-buttonGap-buttonSize, buttonY, state.plusRect.Min.X-buttonGap, buttonY+buttonSize)
	}
	h.height = y + len(h.controls)*controlHeight + panelPadding
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   int

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelWidth     = 200
	panelPadding   = 12
	lineHeight     = 16
	controlHeight  = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 14
	labelBaseline  = 20
)
