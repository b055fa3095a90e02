package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrInvalidColorFormat = errors.New("invalid hex color")
	ErrTooFewStops        = errors.New("gradient needs at least two color stops")
	ErrInvalidIterations  = errors.New("max iterations must not be negative")
)

// Color is an opaque 8-bit RGB triple.
type Color struct {
	R uint8
	G uint8
	B uint8
}

var Black = Color{}

// ParseHex accepts exactly six hex digits with an optional leading '#'.
func ParseHex(hex string) (Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return Color{}, fmt.Errorf("%w %q: expected 6 hex digits, got %d", ErrInvalidColorFormat, hex, len(digits))
	}

	var rgb [3]uint8
	for i := range rgb {
		hi, ok := hexValue(digits[2*i])
		if !ok {
			return Color{}, fmt.Errorf("%w %q: bad digit %q", ErrInvalidColorFormat, hex, digits[2*i])
		}
		lo, ok := hexValue(digits[2*i+1])
		if !ok {
			return Color{}, fmt.Errorf("%w %q: bad digit %q", ErrInvalidColorFormat, hex, digits[2*i+1])
		}
		rgb[i] = hi<<4 | lo
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

// ParseStops parses every stop, failing on the first malformed one.
func ParseStops(stops []string) ([]Color, error) {
	colors := make([]Color, len(stops))
	for i, stop := range stops {
		c, err := ParseHex(stop)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		colors[i] = c
	}
	return colors, nil
}

func hexValue(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c Color) String() string {
	return fmt.Sprintf("{Color R: %d G: %d B: %d}", c.R, c.G, c.B)
}
