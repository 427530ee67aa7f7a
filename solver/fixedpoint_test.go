package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFixedPoint_Contractive iterates g(x) = ∛(x+2), the contractive
// rewrite of x³−x−2 = 0, from x₀ = 0.5.
func TestFixedPoint_Contractive(t *testing.T) {
	g := solver.Func(func(x float64) float64 { return math.Cbrt(x + 2) })

	tr, err := solver.FixedPoint(g, 0.5, solver.Options{Tol: 1e-6, MaxIter: 100})
	require.NoError(t, err)
	require.True(t, tr.Converged())
	assert.LessOrEqual(t, tr.Len(), 15)

	last, ok := tr.Last()
	require.True(t, ok)
	assert.InDelta(t, 1.5213797, last.Next, 1e-5)
}

// TestFixedPoint_RecordsDelta: every record carries x, g(x) and the
// explicit step size.
func TestFixedPoint_RecordsDelta(t *testing.T) {
	g := solver.Func(func(x float64) float64 { return math.Cbrt(x + 2) })

	tr, err := solver.FixedPoint(g, 0.5, solver.Options{Tol: 1e-6, MaxIter: 100})
	require.NoError(t, err)

	prev := 0.5
	for i, s := range tr.Steps() {
		assert.Equal(t, i, s.K)
		assert.Equal(t, prev, s.X, "each step starts where the last ended")
		assert.Equal(t, math.Abs(s.Next-s.X), s.Delta)
		prev = s.Next
	}
}

// TestFixedPoint_Divergent: g(x) = x²+1 from x₀ = 2 blows up to +Inf; the
// overflowing record is kept and the trace reports NonFinite.
func TestFixedPoint_Divergent(t *testing.T) {
	g := solver.Func(func(x float64) float64 { return x*x + 1 })

	tr, err := solver.FixedPoint(g, 2, solver.Options{Tol: 1e-6, MaxIter: 100})
	require.NoError(t, err)
	assert.Equal(t, solver.NonFinite, tr.Reason())
	assert.Less(t, tr.Len(), 20, "float64 overflows within a handful of squarings")

	last, ok := tr.Last()
	require.True(t, ok)
	assert.True(t, math.IsInf(last.Next, 1))
}

// TestFixedPoint_ExhaustedBudget: a fixed point of g(x) = −x oscillates
// forever; the cap is the only bound.
func TestFixedPoint_ExhaustedBudget(t *testing.T) {
	g := solver.Func(func(x float64) float64 { return -x })

	tr, err := solver.FixedPoint(g, 1, solver.Options{Tol: 1e-6, MaxIter: 25})
	require.NoError(t, err)
	assert.Equal(t, solver.Exhausted, tr.Reason())
	assert.Equal(t, 25, tr.Len())
}
