// Package graphics provides the packed color representation used by
// color-valued properties.
package graphics

import (
	"fmt"
	"image/color"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// FromRGBA converts a standard library color.RGBA to a Color.
func FromRGBA(c color.RGBA) Color {
	return RGBA8(c.R, c.G, c.B, c.A)
}

// Components returns the red, green, blue and alpha bytes.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Hex returns the CSS hex form: "#rrggbb" for opaque colors, "#rrggbbaa"
// otherwise.
func (c Color) Hex() string {
	r, g, b, a := c.Components()
	if a == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// ParseHex parses "#rgb", "#rrggbb" and "#rrggbbaa" forms.
func ParseHex(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return 0, fmt.Errorf("not a hex color: %q", s)
	}
	digits := s[1:]
	var r, g, b uint8
	a := uint8(0xFF)
	switch len(digits) {
	case 3:
		n, err := fmt.Sscanf(digits, "%1x%1x%1x", &r, &g, &b)
		if err != nil || n != 3 {
			return 0, fmt.Errorf("not a hex color: %q", s)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		n, err := fmt.Sscanf(digits, "%02x%02x%02x", &r, &g, &b)
		if err != nil || n != 3 {
			return 0, fmt.Errorf("not a hex color: %q", s)
		}
	case 8:
		n, err := fmt.Sscanf(digits, "%02x%02x%02x%02x", &r, &g, &b, &a)
		if err != nil || n != 4 {
			return 0, fmt.Errorf("not a hex color: %q", s)
		}
	default:
		return 0, fmt.Errorf("not a hex color: %q", s)
	}
	return RGBA8(r, g, b, a), nil
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
