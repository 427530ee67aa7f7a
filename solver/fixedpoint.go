package solver

import "math"

// FixedPoint — iterate x = g(x) from an initial guess.
//
// The caller rewrites f(x) = 0 as x = g(x); each step computes
// next = g(x) and records (k, x, next, |next−x|). Convergence requires
// |g′| < 1 near the root — a documented caller obligation this solver
// does not verify. No bracket or derivative is needed.
//
// Stops on a non-finite next (NonFinite), |next−x| < Tol (Converged), or
// the cap (Exhausted).
//
// Errors: ErrNilFunction, ErrBadTolerance, ErrBadMaxIter.
func FixedPoint(g Evaluable, x0 float64, opts Options) (Trace[FixedPointStep], error) {
	if g == nil {
		return Trace[FixedPointStep]{}, ErrNilFunction
	}
	if err := opts.validate(); err != nil {
		return Trace[FixedPointStep]{}, err
	}

	var rec recorder[FixedPointStep]
	x := x0
	for k := 0; k < opts.MaxIter; k++ {
		next := g.Evaluate(x)
		delta := math.Abs(next - x)
		rec.add(FixedPointStep{K: k, X: x, Next: next, Delta: delta})

		if !finite(next) {
			return rec.seal(NonFinite), nil
		}
		if delta < opts.Tol {
			return rec.seal(Converged), nil
		}
		x = next
	}
	return rec.seal(Exhausted), nil
}
