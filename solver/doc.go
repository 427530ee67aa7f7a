// Package solver implements six classic single-variable root-finding
// methods behind one iteration/convergence/failure contract.
//
// 🚀 What is solver?
//
//	Given a target function and method-specific inputs (bracket, seeds,
//	derivative, iteration function), each solver walks its iteration and
//	records every step into an ordered Trace:
//	  • Bisection      — interval halving; slow but guaranteed on a bracket
//	  • FalsePosition  — secant-weighted bracketing (regula falsi)
//	  • FixedPoint     — x = g(x) iteration
//	  • NewtonRaphson  — tangent steps, quadratic convergence near a root
//	  • Secant         — derivative-free superlinear (order ≈ 1.618)
//	  • Muller         — quadratic interpolation over ℂ; finds non-real
//	    roots of functions that are real on the real line
//
// ✨ The shared contract:
//
//   - Every stopping condition is checked in the same order each step:
//     non-finite guard → step-size tolerance → iteration cap
//   - Numerical outcomes are never Go errors. The Trace carries a Reason
//     (Converged, NoBracket, Degenerate, NonFinite, Exhausted); only bad
//     configuration (nil function, non-positive tolerance or cap) errors
//   - Solvers are pure: no retained state, identical inputs produce
//     bit-identical Traces, and concurrent calls need no synchronization
//     as long as the supplied function is reentrant
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind/solver"
//
//	f := solver.Func(func(x float64) float64 { return x*x*x - x - 2 })
//	tr, err := solver.Bisection(f, 1, 2, solver.DefaultOptions())
//	if err != nil {
//	    // invalid options, not a numerical failure
//	}
//	if last, ok := tr.Last(); ok && tr.Converged() {
//	    fmt.Println("root ≈", last.X)
//	}
//
// Record variants per method family:
//
//	BracketStep    — Bisection, FalsePosition: (K, X, FX)
//	OpenStep       — NewtonRaphson, Secant:    (K, X0, X1, F0)
//	FixedPointStep — FixedPoint:               (K, X, Next, Delta)
//	ComplexStep    — Muller:                   (K, X0, X1, F0) over complex128
//
// See examples in example_test.go; cost is bounded by MaxIter times the
// cost of one function evaluation — there is no other timeout.
package solver
