package mandelbrot

import "fmt"

// FullViewHalfWidth is the half width used when a frame has no zoom (scale 0).
const FullViewHalfWidth = 2.0

// Viewport is the rectangle of the complex plane shown in one frame.
type Viewport struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// Scale is the zoom coefficient for a frame.
func Scale(frame int, scaleStep float64) float64 {
	return scaleStep * float64(frame)
}

// NewViewport centers a square of half width 1/scale on the target. A frame
// whose scale is not positive shows the full view instead of an infinite one.
func NewViewport(frame int, scaleStep float64, targetX float64, targetY float64) Viewport {
	halfWidth := FullViewHalfWidth
	if scale := Scale(frame, scaleStep); scale > 0 {
		halfWidth = 1.0 / scale
	}

	return Viewport{
		XMin: targetX - halfWidth,
		YMin: targetY - halfWidth,
		XMax: targetX + halfWidth,
		YMax: targetY + halfWidth,
	}
}

// Point maps pixel (column, row) of a resolution x resolution grid into the viewport.
// The far edge is never reached: column/resolution stays below 1.
func (v Viewport) Point(column int, row int, resolution int) (float64, float64) {
	xPercent := float64(column) / float64(resolution)
	yPercent := float64(row) / float64(resolution)

	x := v.XMin + (v.XMax-v.XMin)*xPercent
	y := v.YMin + (v.YMax-v.YMin)*yPercent
	return x, y
}

func (v Viewport) Contains(x float64, y float64) bool {
	return x >= v.XMin && x <= v.XMax && y >= v.YMin && y <= v.YMax
}

func (v Viewport) String() string {
	return fmt.Sprintf("{Viewport X: [%g, %g] Y: [%g, %g]}", v.XMin, v.XMax, v.YMin, v.YMax)
}
