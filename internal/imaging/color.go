package imaging

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Perceptual luminance weights applied to 8-bit R, G and B channels.
const (
	LumaRed   = 0.21
	LumaGreen = 0.72
	LumaBlue  = 0.07
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGBColor) Hex() string {
	return c.colorful().Hex()
}

// Luminance returns the weighted luminance of c on the 0-255 scale.
func (c RGBColor) Luminance() float64 {
	return Luminance(float64(c.R), float64(c.G), float64(c.B))
}

func (c RGBColor) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ParseHex parses "#rrggbb" or "#rgb" into an RGBColor.
func ParseHex(s string) (RGBColor, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBColor{}, err
	}
	r, g, b := c.RGB255()
	return RGBColor{R: r, G: g, B: b}, nil
}

// Luminance weights 8-bit channel values into a single brightness value.
func Luminance(r, g, b float64) float64 {
	return LumaRed*r + LumaGreen*g + LumaBlue*b
}
