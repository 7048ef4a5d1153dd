package core

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB colour with each channel in [0, 1].
// Scenes describe materials with it; the platform maps it to terminal colours.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// RGB builds a colour from its three channels.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns a neutral colour with all channels set to v.
func Gray(v float64) Color {
	return Color{R: v, G: v, B: v}
}

// Named colours.
var (
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(1, 1, 1)
	ColorRed     = RGB(1, 0, 0)
	ColorGreen   = RGB(0, 1, 0)
	ColorBlue    = RGB(0, 0, 1)
	ColorYellow  = RGB(1, 1, 0)
	ColorCyan    = RGB(0, 1, 1)
	ColorMagenta = RGB(1, 0, 1)
	ColorOrange  = RGB(1, 0.6, 0)
)

// Valid reports whether every channel is a number in [0, 1].
func (c Color) Valid() bool {
	for _, v := range [3]float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Clamped returns the colour with every channel restricted to [0, 1].
// NaN channels become 0.
func (c Color) Clamped() Color {
	return Color{R: clampUnit(c.R), G: clampUnit(c.G), B: clampUnit(c.B)}
}

// Scale multiplies every channel by f. The result is not clamped.
func (c Color) Scale(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Hex returns the clamped colour as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// Lightness returns the perceptual lightness (CIE L*) of the clamped colour, in [0, 1].
func (c Color) Lightness() float64 {
	l, _, _ := c.colorful().Lab()
	return ClampF(l, 0, 1)
}

func (c Color) colorful() colorful.Color {
	cc := c.Clamped()
	return colorful.Color{R: cc.R, G: cc.G, B: cc.B}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return ClampF(v, 0, 1)
}
