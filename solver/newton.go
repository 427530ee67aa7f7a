package solver

import "math"

// NewtonRaphson — tangent-line iteration with a caller-supplied derivative.
//
// Description:
//
//	x₁ = x₀ − f(x₀)/f′(x₀). Quadratic convergence near a simple root;
//	no bracket safety, so a poor x₀ or near-zero derivative may diverge —
//	that risk stays with the caller.
//
// Algorithm Outline:
//  1. Per step: if f′(x₀) == 0, stop with Reason Degenerate before
//     recording (the update is undefined, nothing new to record).
//  2. Compute x₁, record (k, x₀, x₁, f(x₀)).
//  3. Stop on non-finite x₁ (NonFinite), |x₁−x₀| < Tol (Converged), or
//     the cap (Exhausted); otherwise continue from x₁.
//
// Errors: ErrNilFunction (f or df nil), ErrBadTolerance, ErrBadMaxIter.
func NewtonRaphson(f, df Evaluable, x0 float64, opts Options) (Trace[OpenStep], error) {
	if f == nil || df == nil {
		return Trace[OpenStep]{}, ErrNilFunction
	}
	if err := opts.validate(); err != nil {
		return Trace[OpenStep]{}, err
	}

	var rec recorder[OpenStep]
	for k := 0; k < opts.MaxIter; k++ {
		f0 := f.Evaluate(x0)
		d0 := df.Evaluate(x0)
		if d0 == 0 {
			return rec.seal(Degenerate), nil
		}

		x1 := x0 - f0/d0
		rec.add(OpenStep{K: k, X0: x0, X1: x1, F0: f0})

		if !finite(x1) {
			return rec.seal(NonFinite), nil
		}
		if math.Abs(x1-x0) < opts.Tol {
			return rec.seal(Converged), nil
		}
		x0 = x1
	}
	return rec.seal(Exhausted), nil
}
