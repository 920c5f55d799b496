// Package graphics holds the color type shared by the window capability
// interfaces and the preview renderer.
package graphics

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
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

// Components returns the red, green, blue and alpha bytes.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Hex returns the color as #rrggbb, or #aarrggbb when not fully opaque.
func (c Color) Hex() string {
	r, g, b, a := c.Components()
	if a == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", a, r, g, b)
}

func (c Color) String() string {
	return c.Hex()
}

// Luminance returns the relative luminance in [0, 1] using Rec. 709 weights
// on the gamma-encoded channels.
func (c Color) Luminance() float64 {
	r, g, b, _ := c.Components()
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
}

// IsLight reports whether dark foreground content reads better on c.
func (c Color) IsLight() bool {
	return c.Luminance() >= 0.5
}

// ParseColor parses #rgb, #rrggbb, #aarrggbb (the leading # is optional)
// or a CSS/SVG color keyword such as "white" or "slategray". Eight digits
// carry alpha first, as Android color strings do, not the CSS #rrggbbaa
// order: "#80ff0000" is half-transparent red.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("graphics: empty color")
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGBA8(named.R, named.G, named.B, named.A), nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("graphics: invalid color %q", s)
		}
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("graphics: invalid color %q", s)
		}
		return Color(v), nil
	default:
		return 0, fmt.Errorf("graphics: invalid color %q", s)
	}
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
