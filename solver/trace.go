package solver

// Reason explains why a solver stopped. It replaces ad-hoc diagnostics so
// callers can distinguish outcomes without parsing text.
type Reason int

const (
	// Converged – the step-size (or, for FalsePosition, residual/bracket)
	// criterion fired.
	Converged Reason = iota

	// NoBracket – a bracketing method was given an interval without a sign
	// change; the Trace is empty. Treat identically to "no root found".
	NoBracket

	// Degenerate – a locally undefined algebraic step (zero derivative,
	// zero secant denominator, collapsed Muller spacing) halted the loop.
	Degenerate

	// NonFinite – a NaN or ±Inf candidate or function value halted the loop.
	NonFinite

	// Exhausted – the iteration budget was spent; the Trace holds exactly
	// MaxIter records.
	Exhausted
)

// String returns a short lowercase label for the reason.
func (r Reason) String() string {
	switch r {
	case Converged:
		return "converged"
	case NoBracket:
		return "no-bracket"
	case Degenerate:
		return "degenerate"
	case NonFinite:
		return "non-finite"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// BracketStep is one iteration of a bracketing method (Bisection,
// FalsePosition): the new midpoint/intersection X and its function value.
type BracketStep struct {
	K  int
	X  float64
	FX float64
}

// OpenStep is one iteration of an open method (NewtonRaphson, Secant):
// previous candidate X0, new candidate X1, and f at X0.
type OpenStep struct {
	K  int
	X0 float64
	X1 float64
	F0 float64
}

// FixedPointStep is one x = g(x) iteration: current X, Next = g(X), and
// the explicit step size Delta = |Next − X|.
type FixedPointStep struct {
	K     int
	X     float64
	Next  float64
	Delta float64
}

// ComplexStep is one Muller iteration over complex128: previous candidate
// X0, new candidate X1, and f at X0.
type ComplexStep struct {
	K  int
	X0 complex128
	X1 complex128
	F0 complex128
}

// Step constrains Trace to the four per-method record variants.
type Step interface {
	BracketStep | OpenStep | FixedPointStep | ComplexStep
}

// Trace is the ordered sequence of records produced by exactly one solver
// invocation. It is append-only during solving and immutable once
// returned; K values are contiguous starting at 0. An empty Trace with
// Reason NoBracket signals a precondition failure.
type Trace[S Step] struct {
	steps  []S
	reason Reason
}

// Len reports the number of recorded iterations.
func (t Trace[S]) Len() int { return len(t.steps) }

// At returns the i-th record. It panics if i is out of range, like a slice.
func (t Trace[S]) At(i int) S { return t.steps[i] }

// Last returns the final record, or ok=false for an empty Trace.
func (t Trace[S]) Last() (last S, ok bool) {
	if len(t.steps) == 0 {
		return last, false
	}
	return t.steps[len(t.steps)-1], true
}

// Steps returns a fresh copy of all records, preserving immutability of
// the Trace itself.
func (t Trace[S]) Steps() []S {
	out := make([]S, len(t.steps))
	copy(out, t.steps)
	return out
}

// Reason reports why the solver stopped.
func (t Trace[S]) Reason() Reason { return t.reason }

// Converged reports whether the stopping criterion (rather than a failure
// or the budget) ended the iteration.
func (t Trace[S]) Converged() bool { return t.reason == Converged }

// Estimates extracts the per-iteration estimate column using the
// positional convention shared with table/plot consumers: bracketing
// records expose X, open and complex records expose X1, fixed-point
// records expose Next. Real values carry a zero imaginary part.
func Estimates[S Step](t Trace[S]) []complex128 {
	out := make([]complex128, len(t.steps))
	for i, s := range t.steps {
		switch v := any(s).(type) {
		case BracketStep:
			out[i] = complex(v.X, 0)
		case OpenStep:
			out[i] = complex(v.X1, 0)
		case FixedPointStep:
			out[i] = complex(v.Next, 0)
		case ComplexStep:
			out[i] = v.X1
		}
	}
	return out
}

// recorder accumulates steps for a single invocation and seals them into
// an immutable Trace.
type recorder[S Step] struct {
	steps []S
}

func (r *recorder[S]) add(s S) { r.steps = append(r.steps, s) }

func (r *recorder[S]) seal(reason Reason) Trace[S] {
	return Trace[S]{steps: r.steps, reason: reason}
}
