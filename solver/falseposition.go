package solver

import "math"

// FalsePosition — regula falsi bracketing method.
//
// Description:
//
//	Like Bisection, but the new candidate is the x-intercept of the chord
//	through (a, f(a)) and (b, f(b)):
//	    c = b − f(b)·(b−a)/(f(b)−f(a))
//	Superlinear on well-behaved functions, but one endpoint may never move
//	on asymmetric curvature; that stagnation is expected behavior.
//
// Algorithm Outline:
//  1. If f(a)·f(b) > 0, return an empty Trace with Reason NoBracket.
//  2. Per step: if f(b) == f(a), stop with Reason Degenerate (finite
//     inputs, undefined chord). Otherwise compute c, guard c and f(c) for
//     finiteness, record (k, c, f(c)).
//  3. Dual stop criterion: Converged when |f(c)| < Tol OR |b−a| < Tol —
//     whichever fires first. The residual branch may fire while the
//     bracket is still wide; this mirrors the method's classic form.
//  4. Replace the endpoint whose function value shares sign with f(c),
//     same tie-break as Bisection.
//
// Complexity: O(MaxIter) evaluations.
//
// Errors: ErrNilFunction, ErrBadTolerance, ErrBadMaxIter.
func FalsePosition(f Evaluable, a, b float64, opts Options) (Trace[BracketStep], error) {
	if f == nil {
		return Trace[BracketStep]{}, ErrNilFunction
	}
	if err := opts.validate(); err != nil {
		return Trace[BracketStep]{}, err
	}

	fa := f.Evaluate(a)
	fb := f.Evaluate(b)
	if fa*fb > 0 {
		return Trace[BracketStep]{reason: NoBracket}, nil
	}

	var rec recorder[BracketStep]
	for k := 0; k < opts.MaxIter; k++ {
		fa = f.Evaluate(a)
		fb = f.Evaluate(b)

		denom := fb - fa
		if denom == 0 {
			return rec.seal(Degenerate), nil
		}
		c := b - fb*(b-a)/denom
		fc := f.Evaluate(c)
		if !finite(c, fc) {
			return rec.seal(NonFinite), nil
		}
		rec.add(BracketStep{K: k, X: c, FX: fc})

		if math.Abs(fc) < opts.Tol || math.Abs(b-a) < opts.Tol {
			return rec.seal(Converged), nil
		}
		if fa*fc < 0 {
			b = c
		} else {
			a = c
		}
	}
	return rec.seal(Exhausted), nil
}
