package solver

import "math"

// Secant — derivative-free open method over two moving seeds.
//
// Description:
//
//	Replaces Newton's derivative with the finite difference through the
//	two most recent points:
//	    x₂ = x₁ − f(x₁)·(x₁−x₀)/(f(x₁)−f(x₀))
//	Superlinear convergence of order ≈ 1.618 (the golden ratio).
//
// Algorithm Outline:
//  1. Per step: record (k, x₀, x₁, f(x₀)) BEFORE computing the update —
//     unlike NewtonRaphson, which records after.
//  2. If f(x₁) == f(x₀), stop with Reason Degenerate.
//  3. Compute x₂; stop on non-finite x₂ (NonFinite).
//  4. If |x₂−x₁| < Tol, append one final record (k+1, x₁, x₂, f(x₁)) and
//     stop Converged — the Trace therefore ends with both the last input
//     pair and the converged pair. Otherwise shift (x₀,x₁) ← (x₁,x₂).
//
// A Trace that converges on the very last budgeted step carries the extra
// converged record, so its length may reach MaxIter+1; a budget-exhausted
// run holds exactly MaxIter records.
//
// Errors: ErrNilFunction, ErrBadTolerance, ErrBadMaxIter.
func Secant(f Evaluable, x0, x1 float64, opts Options) (Trace[OpenStep], error) {
	if f == nil {
		return Trace[OpenStep]{}, ErrNilFunction
	}
	if err := opts.validate(); err != nil {
		return Trace[OpenStep]{}, err
	}

	var rec recorder[OpenStep]
	for k := 0; k < opts.MaxIter; k++ {
		f0 := f.Evaluate(x0)
		f1 := f.Evaluate(x1)
		rec.add(OpenStep{K: k, X0: x0, X1: x1, F0: f0})

		if f1-f0 == 0 {
			return rec.seal(Degenerate), nil
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		if !finite(x2) {
			return rec.seal(NonFinite), nil
		}
		if math.Abs(x2-x1) < opts.Tol {
			rec.add(OpenStep{K: k + 1, X0: x1, X1: x2, F0: f1})
			return rec.seal(Converged), nil
		}
		x0, x1 = x1, x2
	}
	return rec.seal(Exhausted), nil
}
