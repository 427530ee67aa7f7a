package solver

import "math/cmplx"

// Muller — quadratic interpolation over complex numbers.
//
// Description:
//
//	Fits a parabola through the three most recent points and jumps to its
//	nearer root. Because the discriminant square root is taken in ℂ, the
//	method can leave the real line and is the only solver here able to
//	converge to non-real roots of a function that is real on the real
//	line. Real seeds are promoted to complex128 at the boundary.
//
// Algorithm Outline (one step over the triplet x₀, x₁, x₂):
//  1. h₀ = x₁−x₀, h₁ = x₂−x₁. If either spacing is degenerate (modulus
//     below 1e-15), fall back to a secant-like step over whichever h
//     survives; if the resulting slope is also degenerate, stop
//     (Reason Degenerate — no progress possible).
//  2. Forward differences δ₀ = (f₁−f₀)/h₀, δ₁ = (f₂−f₁)/h₁. If h₁+h₀ is
//     near zero the parabola is ill-posed: secant step with slope δ₁.
//  3. Coefficients a = (δ₁−δ₀)/(h₁+h₀), b = a·h₁+δ₁, c = f₂.
//     √disc = cmplx.Sqrt(b²−4ac) — complex-safe, the discriminant may be
//     negative for real inputs.
//  4. Denominator selection: b+√disc or b−√disc, whichever has larger
//     modulus, avoiding catastrophic cancellation. If the chosen
//     denominator is still near zero, secant step with slope b (or stop
//     Degenerate if b is, too).
//  5. x₃ = x₂ + (−2c)/denominator. Record (k, x₂, x₃, f₂) BEFORE the
//     convergence check; stop Converged when |x₃−x₂| < Tol, NonFinite
//     when either part of x₃ is not finite (the bad point never enters
//     the next triplet). Otherwise shift (x₀,x₁,x₂) ← (x₁,x₂,x₃).
//
// Errors: ErrNilFunction, ErrBadTolerance, ErrBadMaxIter.
func Muller(f ComplexEvaluable, x0, x1, x2 complex128, opts Options) (Trace[ComplexStep], error) {
	if f == nil {
		return Trace[ComplexStep]{}, ErrNilFunction
	}
	if err := opts.validate(); err != nil {
		return Trace[ComplexStep]{}, err
	}

	var rec recorder[ComplexStep]
	for k := 0; k < opts.MaxIter; k++ {
		f0 := f.Evaluate(x0)
		f1 := f.Evaluate(x1)
		f2 := f.Evaluate(x2)

		h0 := x1 - x0
		h1 := x2 - x1

		var x3 complex128
		if cmplx.Abs(h0) < spacingTiny || cmplx.Abs(h1) < spacingTiny {
			// Degenerate spacing: secant-like step over the surviving h.
			h := complex(1, 0)
			if cmplx.Abs(h1) > spacingTiny {
				h = h1
			} else if cmplx.Abs(h0) > spacingTiny {
				h = h0
			}
			slope := (f2 - f1) / h
			if cmplx.Abs(slope) < spacingTiny {
				return rec.seal(Degenerate), nil
			}
			x3 = x2 - f2/slope
		} else {
			d0 := (f1 - f0) / h0
			d1 := (f2 - f1) / h1
			hs := h1 + h0
			if cmplx.Abs(hs) < spacingTiny {
				// Near-linear configuration: secant step from (x₁, x₂).
				if cmplx.Abs(d1) < spacingTiny {
					return rec.seal(Degenerate), nil
				}
				x3 = x2 - f2/d1
			} else {
				a := (d1 - d0) / hs
				b := a*h1 + d1
				c := f2

				sq := cmplx.Sqrt(b*b - 4*a*c)
				den := b + sq
				if alt := b - sq; cmplx.Abs(alt) >= cmplx.Abs(den) {
					den = alt
				}
				if cmplx.Abs(den) < spacingTiny {
					if cmplx.Abs(b) < spacingTiny {
						return rec.seal(Degenerate), nil
					}
					x3 = x2 - c/b
				} else {
					x3 = x2 + (-2*c)/den
				}
			}
		}

		rec.add(ComplexStep{K: k, X0: x2, X1: x3, F0: f2})

		if cmplx.Abs(x3-x2) < opts.Tol {
			return rec.seal(Converged), nil
		}
		if !finiteC(x3) {
			return rec.seal(NonFinite), nil
		}
		x0, x1, x2 = x1, x2, x3
	}
	return rec.seal(Exhausted), nil
}
