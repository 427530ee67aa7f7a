// Package solver: capability interfaces, options and sentinel errors
// shared by all six methods.
package solver

import (
	"errors"
	"math"
)

// Sentinel errors returned by the solver entry points. They cover only
// invalid configuration; every numerical outcome is reported through the
// Trace and its Reason, never as an error.
var (
	// ErrNilFunction indicates that a required function argument is nil.
	ErrNilFunction = errors.New("solver: function is nil")

	// ErrBadTolerance indicates that Options.Tol is not a positive finite number.
	ErrBadTolerance = errors.New("solver: tolerance must be positive and finite")

	// ErrBadMaxIter indicates that Options.MaxIter is not positive.
	ErrBadMaxIter = errors.New("solver: MaxIter must be positive")
)

// Evaluable is the capability a real-valued target function must provide.
// Implementations must be pure: the same x always yields the same value.
type Evaluable interface {
	Evaluate(x float64) float64
}

// Func adapts a plain closure to Evaluable.
//
//	f := solver.Func(func(x float64) float64 { return x*x - 2 })
type Func func(float64) float64

// Evaluate implements Evaluable.
func (f Func) Evaluate(x float64) float64 { return f(x) }

// ComplexEvaluable is the complex counterpart of Evaluable, used only by
// Muller. It is kept separate so the complex abstraction never leaks into
// the five real-valued solvers.
type ComplexEvaluable interface {
	Evaluate(z complex128) complex128
}

// ComplexFunc adapts a plain closure to ComplexEvaluable.
type ComplexFunc func(complex128) complex128

// Evaluate implements ComplexEvaluable.
func (f ComplexFunc) Evaluate(z complex128) complex128 { return f(z) }

// Options configures a single solver invocation.
//
// Tol     – absolute step tolerance; iteration stops once the distance
//
//	between consecutive candidates drops below it (complex modulus
//	for Muller). FalsePosition additionally stops on |f(c)| < Tol.
//
// MaxIter – hard cap on recorded iterations. Reaching it is not an error;
//
//	the Trace simply has MaxIter records and Reason Exhausted.
type Options struct {
	Tol     float64
	MaxIter int
}

// DefaultOptions returns the conventional defaults: Tol 1e-6, MaxIter 1000.
func DefaultOptions() Options {
	return Options{Tol: 1e-6, MaxIter: 1000}
}

// validate rejects non-positive or non-finite tolerances and non-positive caps.
func (o Options) validate() error {
	if !(o.Tol > 0) || math.IsInf(o.Tol, 0) {
		return ErrBadTolerance
	}
	if o.MaxIter <= 0 {
		return ErrBadMaxIter
	}
	return nil
}
