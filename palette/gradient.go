package palette

import (
	"fmt"

	"MandelbrotZoom/misc"
)

// Gradient maps an escape iteration count directly to a color.
type Gradient []Color

// NewGradient spreads maxIters entries evenly over the stops, interpolating
// linearly between neighbouring stops.
func NewGradient(stops []string, maxIters int) (Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewStops, len(stops))
	}
	if maxIters < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, maxIters)
	}
	colors, err := ParseStops(stops)
	if err != nil {
		return nil, err
	}
	return interpolate(colors, maxIters), nil
}

func interpolate(colors []Color, maxIters int) Gradient {
	gradient := make(Gradient, maxIters)
	segments := len(colors) - 1

	for t := 0; t < maxIters; t++ {
		segment := t * segments / maxIters
		if segment > segments-1 {
			segment = segments - 1
		}
		position := float64(t) * float64(segments) / float64(maxIters)
		fraction := position - float64(segment)

		from, to := colors[segment], colors[segment+1]
		gradient[t] = Color{
			R: misc.LerpUint8(from.R, to.R, fraction),
			G: misc.LerpUint8(from.G, to.G, fraction),
			B: misc.LerpUint8(from.B, to.B, fraction),
		}
	}
	return gradient
}

// At returns the color for iteration count k, or false when k is outside the table.
func (g Gradient) At(k int) (Color, bool) {
	if k < 0 || k >= len(g) {
		return Color{}, false
	}
	return g[k], true
}
