package color

import (
	"fmt"
	stdcolor "image/color"
	"strings"
)

// Color is a non-premultiplied 8-bit RGBA value.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// FromRGBA converts an image/color value.
func FromRGBA(c stdcolor.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex formats the color as #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the color as #rrggbbaa.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts any literal the default resolver understands.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := NewResolver().Resolve(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func normalizeToken(token string) string {
	return strings.TrimPrefix(strings.TrimSpace(token), ":")
}
