package core

import "image/color"

// Color is an RGB triple. Channels are unconstrained during arithmetic;
// Fix must be applied before a color is used as a final pixel.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color multiplied by a scalar
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// Mul returns the channel-wise product of two colors
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Fix clamps every channel into [0, 1]
func (c Color) Fix() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// RGBA converts the clamped color to an 8-bit RGBA value
func (c Color) RGBA() color.RGBA {
	f := c.Fix()
	return color.RGBA{
		R: uint8(255 * f.R),
		G: uint8(255 * f.G),
		B: uint8(255 * f.B),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	// min and max propagate NaN; treat it as black
	if v != v {
		return 0
	}
	return max(0, min(1, v))
}
