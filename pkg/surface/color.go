package surface

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Converter is the Colors implementation shared by the bundled surfaces.
type Converter struct{}

// RGBToHex converts 0-255 channel values to "#rrggbb". Out of range values are clamped.
func (Converter) RGBToHex(r, g, b float64) string {
	c := colorful.Color{R: channel(r), G: channel(g), B: channel(b)}
	return c.Clamped().Hex()
}

// HSLToHex converts hue in degrees and saturation and lightness in percent to "#rrggbb".
func (Converter) HSLToHex(h, s, l float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, clamp01(s/100), clamp01(l/100)).Clamped().Hex()
}

func channel(v float64) float64 {
	return clamp01(math.Round(v) / 255)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
