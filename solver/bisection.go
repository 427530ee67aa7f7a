package solver

import "math"

// Bisection — interval-halving bracketing method.
//
// Description:
//
//	If f(a) and f(b) have opposite signs, a continuous f has a root in
//	[a, b]. Each step evaluates the midpoint c = (a+b)/2, records it, and
//	keeps the half that still brackets the root. The bracket width is
//	exactly (b₀−a₀)/2ᵏ after k steps, so convergence is guaranteed but
//	only linear.
//
// Algorithm Outline:
//  1. If f(a)·f(b) > 0, return an empty Trace with Reason NoBracket.
//  2. While |b−a| > Tol and fewer than MaxIter steps:
//     c = (a+b)/2, record (k, c, f(c)).
//     Tie-break: if f(a)·f(c) < 0 replace b, else replace a
//     (f(c) == 0 therefore replaces a).
//  3. Reason is Converged once |b−a| ≤ Tol, Exhausted at the cap,
//     NonFinite if c or f(c) stops being finite.
//
// Complexity:
//
//	O(MaxIter) function evaluations, O(Trace length) memory.
//
// Errors: ErrNilFunction, ErrBadTolerance, ErrBadMaxIter.
func Bisection(f Evaluable, a, b float64, opts Options) (Trace[BracketStep], error) {
	if f == nil {
		return Trace[BracketStep]{}, ErrNilFunction
	}
	if err := opts.validate(); err != nil {
		return Trace[BracketStep]{}, err
	}

	fa := f.Evaluate(a)
	if fa*f.Evaluate(b) > 0 {
		return Trace[BracketStep]{reason: NoBracket}, nil
	}

	var rec recorder[BracketStep]
	k := 0
	for math.Abs(b-a) > opts.Tol && k < opts.MaxIter {
		c := (a + b) / 2
		fc := f.Evaluate(c)
		rec.add(BracketStep{K: k, X: c, FX: fc})
		k++

		if !finite(c, fc) {
			return rec.seal(NonFinite), nil
		}
		if fa*fc < 0 {
			b = c
		} else {
			a = c
			fa = fc
		}
	}

	if math.Abs(b-a) <= opts.Tol {
		return rec.seal(Converged), nil
	}
	return rec.seal(Exhausted), nil
}
