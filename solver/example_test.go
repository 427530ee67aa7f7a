package solver_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/solver"
)

// ExampleBisection finds the real root of x³−x−2 inside [1,2].
func ExampleBisection() {
	f := solver.Func(func(x float64) float64 { return x*x*x - x - 2 })

	tr, err := solver.Bisection(f, 1, 2, solver.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	last, _ := tr.Last()
	fmt.Printf("root ≈ %.4f (%s)\n", last.X, tr.Reason())
	// Output:
	// root ≈ 1.5214 (converged)
}

// ExampleFalsePosition converges on the same root via the chord update;
// the residual branch of the dual criterion fires first.
func ExampleFalsePosition() {
	f := solver.Func(func(x float64) float64 { return x*x*x - x - 2 })

	tr, _ := solver.FalsePosition(f, 1, 2, solver.DefaultOptions())
	last, _ := tr.Last()
	fmt.Printf("root ≈ %.4f (%s)\n", last.X, tr.Reason())
	// Output:
	// root ≈ 1.5214 (converged)
}

// ExampleFixedPoint iterates the contractive rewrite x = ∛(x+2).
func ExampleFixedPoint() {
	g := solver.Func(func(x float64) float64 { return math.Cbrt(x + 2) })

	tr, _ := solver.FixedPoint(g, 0.5, solver.DefaultOptions())
	last, _ := tr.Last()
	fmt.Printf("root ≈ %.4f (%s)\n", last.Next, tr.Reason())
	// Output:
	// root ≈ 1.5214 (converged)
}

// ExampleNewtonRaphson doubles correct digits every step toward √2.
func ExampleNewtonRaphson() {
	f := solver.Func(func(x float64) float64 { return x*x - 2 })
	df := solver.Func(func(x float64) float64 { return 2 * x })

	tr, _ := solver.NewtonRaphson(f, df, 1, solver.DefaultOptions())
	last, _ := tr.Last()
	fmt.Printf("√2 ≈ %.6f after %d steps\n", last.X1, tr.Len())
	// Output:
	// √2 ≈ 1.414214 after 5 steps
}

// ExampleSecant needs no derivative: two seeds and the chord slope do.
func ExampleSecant() {
	f := solver.Func(func(x float64) float64 { return math.Exp(-x) - x })

	tr, _ := solver.Secant(f, 0, 1, solver.Options{Tol: 1e-4, MaxIter: 50})
	last, _ := tr.Last()
	fmt.Printf("root ≈ %.4f (%s)\n", last.X1, tr.Reason())
	// Output:
	// root ≈ 0.5671 (converged)
}

// ExampleMuller lands on a non-real root of z²+1 from purely real seeds —
// the complex discriminant square root takes it off the real line.
func ExampleMuller() {
	f := solver.ComplexFunc(func(z complex128) complex128 { return z*z + 1 })

	tr, _ := solver.Muller(f, 0, 0.5, 1, solver.DefaultOptions())
	last, _ := tr.Last()
	fmt.Printf("root = %v (%s)\n", last.X1, tr.Reason())
	// Output:
	// root = (0-1i) (converged)
}
