// Package rootfind is a single-variable root-finding toolkit — six classic
// iterative methods sharing one trace/convergence/failure contract.
//
// 🚀 What is rootfind?
//
//	A compact numerical library that brings together:
//		• Bracketing methods: Bisection, False Position (regula falsi)
//		• Open methods: Fixed-Point, Newton–Raphson, Secant
//		• Complex-capable: Muller (quadratic interpolation over ℂ)
//		• A shared iteration Trace — every step recorded, every outcome explained
//		• Expression-driven problems (govaluate) and YAML study files (viper)
//
// ✨ Why choose rootfind?
//
//   - Uniform contract – every solver returns an ordered Trace plus a
//     termination Reason (converged / no bracket / degenerate / non-finite /
//     budget exhausted); nothing numerical is ever a Go error
//   - Pure functions – no hidden state, bit-identical reruns, safe to call
//     from any number of goroutines
//   - Complex roots – Muller finds non-real roots of real polynomials via
//     complex-safe discriminant handling
//
// Under the hood, everything is organized under four subpackages:
//
//	solver/ — the six methods, the Trace type and the convergence policy
//	expr/   — compile "x**3 - x - 2" into a solver.Evaluable
//	config/ — YAML study files: problems, brackets, seeds, tolerances
//	report/ — side-by-side iteration tables and CSV export for plotting
//
// Quick sketch:
//
//	f := solver.Func(func(x float64) float64 { return x*x - 2 })
//	tr, err := solver.Bisection(f, 1, 2, solver.DefaultOptions())
//	// tr.Last() ≈ √2, tr.Reason() == solver.Converged
//
// Dive into README.md and cmd/rootfind for a batch driver that renders
// per-iteration comparison tables across all six methods.
//
//	go get github.com/katalvlaran/rootfind/solver
package rootfind
