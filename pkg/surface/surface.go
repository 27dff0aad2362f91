// Package surface defines the drawing capability the renderer paints onto and
// provides a raster implementation backed by gg plus an in-memory recorder.
package surface

import "boxpaint/pkg/text"

// Surface is a fixed-size 2D drawing target. Coordinates are device pixels with
// the origin at the top-left corner; colors are canonical "#rrggbb" strings.
type Surface interface {
	Width() float64
	Height() float64
	FillRect(x, y, w, h float64, color string)
	// FillText draws s left-aligned with its line box's top-left corner at (x, y).
	FillText(s string, x, y, size float64, color string)
	MeasureText(s string, size float64) text.Metrics
	Colors
}

// Colors converts functional color notations to canonical hex.
type Colors interface {
	RGBToHex(r, g, b float64) string
	HSLToHex(h, s, l float64) string
}
