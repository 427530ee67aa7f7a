// Package expr compiles expression strings into solver-ready functions.
//
// A compiled expression satisfies solver.Evaluable, so problems can be
// described as text ("x*x*x - x - 2", "cos(x) - x", "pow(x+2, 1.0/3.0)")
// in study files instead of Go closures. The usual elementary functions
// are registered: sin, cos, tan, exp, log, sqrt, abs, pow.
//
// Evaluation failures (bad domain, non-numeric result) surface as NaN, so
// the solver's non-finite guard terminates the trace — the error taxonomy
// stays uniform with hand-written functions.
package expr

import (
	"math"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/katalvlaran/rootfind/solver"
)

// compiled is a govaluate-backed solver.Evaluable.
type compiled struct {
	expr *govaluate.EvaluableExpression
}

// New compiles an expression in the single variable x.
//
// Decimal commas are normalized to dots before parsing, so "0,5*x" and
// "0.5*x" are equivalent. The returned function is safe for concurrent
// use; each Evaluate builds its own parameter map.
func New(expression string) (solver.Evaluable, error) {
	funcs := map[string]govaluate.ExpressionFunction{
		"sin": func(args ...interface{}) (interface{}, error) { return math.Sin(toFloat(args[0])), nil },
		"cos": func(args ...interface{}) (interface{}, error) { return math.Cos(toFloat(args[0])), nil },
		"tan": func(args ...interface{}) (interface{}, error) { return math.Tan(toFloat(args[0])), nil },
		"exp": func(args ...interface{}) (interface{}, error) { return math.Exp(toFloat(args[0])), nil },
		"log": func(args ...interface{}) (interface{}, error) { return math.Log(toFloat(args[0])), nil },
		"sqrt": func(args ...interface{}) (interface{}, error) {
			return math.Sqrt(toFloat(args[0])), nil
		},
		"cbrt": func(args ...interface{}) (interface{}, error) {
			return math.Cbrt(toFloat(args[0])), nil
		},
		"abs": func(args ...interface{}) (interface{}, error) {
			return math.Abs(toFloat(args[0])), nil
		},
		"pow": func(args ...interface{}) (interface{}, error) {
			return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
		},
	}

	expression = strings.ReplaceAll(expression, ",", ".")

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(expression, funcs)
	if err != nil {
		return nil, err
	}
	return &compiled{expr: parsed}, nil
}

// Evaluate implements solver.Evaluable. Anything that is not a finite
// number comes back as NaN.
func (c *compiled) Evaluate(x float64) float64 {
	v, err := c.expr.Evaluate(map[string]interface{}{"x": x})
	if err != nil {
		return math.NaN()
	}
	return toFloat(v)
}

// Polynomial returns the complex evaluation of the polynomial with the
// given real coefficients, highest degree first, via Horner's rule.
// This is the expression form Muller problems use: govaluate works over
// float64 only, while a polynomial extends to ℂ naturally.
//
//	quartic := expr.Polynomial(1, -3, 1, 1, 1) // z⁴ − 3z³ + z² + z + 1
func Polynomial(coeffs ...float64) solver.ComplexFunc {
	cs := make([]float64, len(coeffs))
	copy(cs, coeffs)
	return func(z complex128) complex128 {
		var acc complex128
		for _, c := range cs {
			acc = acc*z + complex(c, 0)
		}
		return acc
	}
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
