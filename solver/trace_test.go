package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions_Validation: configuration problems are the only Go errors
// the solvers return.
func TestOptions_Validation(t *testing.T) {
	f := solver.Func(func(x float64) float64 { return x })

	_, err := solver.Bisection(nil, 0, 1, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrNilFunction)

	_, err = solver.Bisection(f, 0, 1, solver.Options{Tol: 0, MaxIter: 10})
	assert.ErrorIs(t, err, solver.ErrBadTolerance)

	_, err = solver.Secant(f, 0, 1, solver.Options{Tol: -1e-6, MaxIter: 10})
	assert.ErrorIs(t, err, solver.ErrBadTolerance)

	_, err = solver.FixedPoint(f, 0, solver.Options{Tol: math.NaN(), MaxIter: 10})
	assert.ErrorIs(t, err, solver.ErrBadTolerance)

	_, err = solver.Muller(solver.ComplexFunc(func(z complex128) complex128 { return z }),
		0, 1, 2, solver.Options{Tol: 1e-6, MaxIter: 0})
	assert.ErrorIs(t, err, solver.ErrBadMaxIter)
}

// TestDefaultOptions pins the conventional defaults.
func TestDefaultOptions(t *testing.T) {
	opts := solver.DefaultOptions()
	assert.Equal(t, 1e-6, opts.Tol)
	assert.Equal(t, 1000, opts.MaxIter)
}

// TestReason_String covers the label of every termination reason.
func TestReason_String(t *testing.T) {
	assert.Equal(t, "converged", solver.Converged.String())
	assert.Equal(t, "no-bracket", solver.NoBracket.String())
	assert.Equal(t, "degenerate", solver.Degenerate.String())
	assert.Equal(t, "non-finite", solver.NonFinite.String())
	assert.Equal(t, "exhausted", solver.Exhausted.String())
	assert.Equal(t, "unknown", solver.Reason(99).String())
}

// TestTrace_StepsIsACopy: mutating the returned slice must not leak back
// into the Trace.
func TestTrace_StepsIsACopy(t *testing.T) {
	f := solver.Func(func(x float64) float64 { return x*x - 2 })

	tr, err := solver.Bisection(f, 1, 2, solver.Options{Tol: 1e-3, MaxIter: 50})
	require.NoError(t, err)
	require.NotZero(t, tr.Len())

	steps := tr.Steps()
	original := steps[0]
	steps[0] = solver.BracketStep{K: -1, X: 99, FX: 99}
	assert.Equal(t, original, tr.At(0), "Trace contents are immutable")
}

// TestEstimates_PositionalConvention: the estimate column is X for
// bracketing records, X1 for open/complex records, Next for fixed-point
// records.
func TestEstimates_PositionalConvention(t *testing.T) {
	f := solver.Func(func(x float64) float64 { return x*x - 2 })
	df := solver.Func(func(x float64) float64 { return 2 * x })
	opts := solver.Options{Tol: 1e-6, MaxIter: 100}

	bis, err := solver.Bisection(f, 1, 2, opts)
	require.NoError(t, err)
	est := solver.Estimates(bis)
	require.Equal(t, bis.Len(), len(est))
	assert.Equal(t, complex(bis.At(0).X, 0), est[0])

	newt, err := solver.NewtonRaphson(f, df, 1, opts)
	require.NoError(t, err)
	est = solver.Estimates(newt)
	assert.Equal(t, complex(newt.At(0).X1, 0), est[0])

	fp, err := solver.FixedPoint(solver.Func(func(x float64) float64 { return math.Cbrt(x + 2) }), 0.5, opts)
	require.NoError(t, err)
	est = solver.Estimates(fp)
	assert.Equal(t, complex(fp.At(0).Next, 0), est[0])

	mul, err := solver.Muller(solver.ComplexFunc(func(z complex128) complex128 { return z*z + 1 }),
		0, 0.5, 1, opts)
	require.NoError(t, err)
	est = solver.Estimates(mul)
	assert.Equal(t, mul.At(0).X1, est[0])
}

// TestFuncAdapters: plain closures satisfy the capability interfaces.
func TestFuncAdapters(t *testing.T) {
	var e solver.Evaluable = solver.Func(func(x float64) float64 { return 2 * x })
	assert.Equal(t, 6.0, e.Evaluate(3))

	var c solver.ComplexEvaluable = solver.ComplexFunc(func(z complex128) complex128 { return z * z })
	assert.Equal(t, complex(-1, 0), c.Evaluate(complex(0, 1)))
}
