package tess

import "fmt"

// Color is an RGBA color with float32 components in [0, 1].
// Colors are straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A float32
}

// NewColor creates a Color from components in [0, 1].
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque Color from components in [0, 1].
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Hex creates a Color from a hex string like "#RRGGBB" or "#RRGGBBAA".
// The leading '#' is optional. Invalid strings return ColorTransparent.
func Hex(s string) Color {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var r, g, b, a uint8
	a = 255
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return ColorTransparent
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return ColorTransparent
		}
	default:
		return ColorTransparent
	}
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// Common colors.
var (
	ColorTransparent = Color{}
	ColorWhite       = Color{R: 1, G: 1, B: 1, A: 1}
	ColorBlack       = Color{A: 1}
	ColorRed         = Color{R: 1, A: 1}
	ColorGreen       = Color{G: 1, A: 1}
	ColorBlue        = Color{B: 1, A: 1}
)

// IsTransparent reports whether the color would make no visible mark.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Lerp linearly interpolates between c and d at parameter t.
func (c Color) Lerp(d Color, t float32) Color {
	return Color{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

// Premultiply returns the color with RGB multiplied by alpha.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// array returns the color as a 4-element array for the vertex stream.
func (c Color) array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
