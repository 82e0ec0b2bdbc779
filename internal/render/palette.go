package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the colors used for a frame.
type Palette struct {
	Background color.Color
	Foreground color.Color
	// Paint highlights cells freshly painted by the pointer.
	Paint color.Color
}

// DefaultPalette returns the dark theme with amber cells and green paint.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 0x1d, G: 0x24, B: 0x33, A: 0xff},
		Foreground: color.RGBA{R: 0xff, G: 0xcc, B: 0x66, A: 0xff},
		Paint:      color.RGBA{R: 0xba, G: 0xe6, B: 0x7e, A: 0xff},
	}
}

// ParseHexColor parses "#rgb" or "#rrggbb" (the leading '#' is optional).
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rgb or #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
