package imaging

import (
	"fmt"
	"math"

	"github.com/ironsheep/picturelab/internal/picture"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a pixel's color in several representations.
type ColorResult struct {
	Row int      `json:"row"`
	Col int      `json:"col"`
	Hex string   `json:"hex"` // "#rrggbb"
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// SampleColor reads the color of the pixel at (row, col).
//
// Returns an error wrapping picture.ErrOutOfBounds when the coordinate lies
// outside p.
func SampleColor(p *picture.Picture, row, col int) (*ColorResult, error) {
	c, err := p.ColorAt(row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to sample color: %w", err)
	}

	h, s, l := c.HSL()
	if math.IsNaN(h) {
		h = 0
	}
	return &ColorResult{
		Row: row,
		Col: col,
		Hex: c.Hex(),
		RGB: RGBColor{R: c.R, G: c.G, B: c.B},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}, nil
}
