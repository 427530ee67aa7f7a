package solver

import "math"

// spacingTiny is the threshold below which Muller treats point spacings
// and denominators as degenerate.
const spacingTiny = 1e-15

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// finiteC reports whether both the real and imaginary part are finite.
func finiteC(z complex128) bool {
	return finite(real(z), imag(z))
}
