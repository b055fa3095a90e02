package mandelbrot

// snapshotPeriod is how many iterations pass between orbit snapshots.
const snapshotPeriod = 20

// EscapeTime iterates z = z*z + c from z = 0 and returns the iteration at which
// |z| exceeded 2, or maxIters when the point never escaped.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Optimized_escape_time_algorithms
func EscapeTime(x float64, y float64, maxIters int) int {
	x1, y1, x2, y2 := 0.0, 0.0, 0.0, 0.0
	oldX, oldY := 0.0, 0.0
	period := 0

	for iteration := 0; iteration < maxIters; iteration++ {
		if x2+y2 > 4.0 {
			return iteration
		}
		y1 = 2*x1*y1 + y
		x1 = x2 - y2 + x
		x2 = x1 * x1
		y2 = y1 * y1

		// An orbit that lands exactly on an earlier value is cyclic and never escapes.
		// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Periodicity_checking
		if x1 == oldX && y1 == oldY {
			return maxIters
		}
		period++
		if period > snapshotPeriod {
			period = 0
			oldX = x1
			oldY = y1
		}
	}

	return maxIters
}
