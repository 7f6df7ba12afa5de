package sketch

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a stroke color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// color.Color is premultiplied.
	return Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// NRGBA converts c to the standard non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

// Opacity returns c with its alpha replaced by a.
func (c Color) Opacity(a float64) Color {
	c.A = a
	return c
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// HexString formats the color channels as "#RRGGBB". Alpha is dropped.
func (c Color) HexString() string {
	return fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("Color(%.3g, %.3g, %.3g, %.3g)", c.R, c.G, c.B, c.A)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return Black
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// channel converts a [0, 1] component to 0..255 with rounding.
func channel(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}

// Palette.
var (
	Black  = RGB(0, 0, 0)
	White  = RGB(1, 1, 1)
	Yellow = RGB(1, 0.8, 0)
	Cyan   = RGB(0, 1, 1)
	Red    = RGB(1, 0, 0)
	Green  = RGB(0, 1, 0)
	Blue   = RGB(0, 0, 1)
	Orange = RGB(1, 140.0/255, 0)
	Pink   = RGB(1, 192.0/255, 203.0/255)
	Indigo = RGB(75.0/255, 0, 130.0/255)
	Gray   = RGB(0.5, 0.5, 0.5)
	Purple = RGB(0.5, 0, 0.5)
	Mint   = RGB(64.0/255, 224.0/255, 208.0/255)
)

// ParseColor resolves a palette name ("red", "yellow", ...) or a hex string.
func ParseColor(s string) (Color, error) {
	if c, ok := paletteNames[s]; ok {
		return c, nil
	}
	if len(s) > 0 && s[0] == '#' {
		return Hex(s), nil
	}
	return Color{}, fmt.Errorf("sketch: unknown color %q", s)
}

var paletteNames = map[string]Color{
	"black":  Black,
	"white":  White,
	"yellow": Yellow,
	"cyan":   Cyan,
	"red":    Red,
	"green":  Green,
	"blue":   Blue,
	"orange": Orange,
	"pink":   Pink,
	"indigo": Indigo,
	"gray":   Gray,
	"purple": Purple,
	"mint":   Mint,
}
