// Package config defines the data structures for root-finding study files
// and includes functions for loading and validating the YAML config.
//
// A study names a set of problems to run in one batch: each problem picks
// a method, a target function (an expression, or polynomial coefficients
// for muller), the method-specific inputs, and optional per-problem
// tolerance and iteration-cap overrides.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Method names accepted in study files.
const (
	MethodBisection     = "bisection"
	MethodFalsePosition = "falseposition"
	MethodFixedPoint    = "fixedpoint"
	MethodNewton        = "newton"
	MethodSecant        = "secant"
	MethodMuller        = "muller"
)

// Sentinel errors for study validation.
var (
	// ErrNoProblems indicates that the study lists nothing to solve.
	ErrNoProblems = errors.New("config: study has no problems")

	// ErrUnknownMethod indicates an unrecognized method name.
	ErrUnknownMethod = errors.New("config: unknown method")

	// ErrMissingFunction indicates that a problem has neither an expression
	// nor polynomial coefficients where one is required.
	ErrMissingFunction = errors.New("config: problem has no function")

	// ErrMissingDerivative indicates a newton problem without a derivative.
	ErrMissingDerivative = errors.New("config: newton requires a derivative")

	// ErrBadBracket indicates that a bracketing problem does not carry
	// exactly two bracket endpoints.
	ErrBadBracket = errors.New("config: bracket must have exactly two endpoints")

	// ErrBadSeeds indicates a wrong number of seeds for the method.
	ErrBadSeeds = errors.New("config: wrong number of seeds for method")
)

// Study holds one batch of root-finding problems plus shared defaults.
type Study struct {
	Name          string
	Tolerance     float64
	MaxIterations int
	Problems      []Problem
}

// Problem describes a single solver invocation.
//
// Function/Derivative/Transform are govaluate expressions in x.
// Coefficients (highest degree first) replace Function for muller, whose
// target must extend to complex arguments. Seeds are strings so muller
// may use Go complex literals such as "0.6+0.8i"; the other methods parse
// them as plain floats.
type Problem struct {
	Name          string
	Method        string
	Function      string
	Derivative    string
	Transform     string
	Coefficients  []float64
	Bracket       []float64
	Seeds         []string
	Tolerance     float64
	MaxIterations int
}

// LoadStudy reads and validates the YAML-formatted study at the given path.
func LoadStudy(path string) (*Study, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var study Study
	if err := v.Unmarshal(&study); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	if err := study.Validate(); err != nil {
		return nil, err
	}
	return &study, nil
}

// Validate checks every problem for the inputs its method requires.
func (s *Study) Validate() error {
	if len(s.Problems) == 0 {
		return ErrNoProblems
	}
	for i := range s.Problems {
		if err := s.Problems[i].validate(); err != nil {
			return fmt.Errorf("config: problem %q: %w", s.Problems[i].Name, err)
		}
	}
	return nil
}

func (p *Problem) validate() error {
	switch strings.ToLower(p.Method) {
	case MethodBisection, MethodFalsePosition:
		if p.Function == "" {
			return ErrMissingFunction
		}
		if len(p.Bracket) != 2 {
			return ErrBadBracket
		}
	case MethodFixedPoint:
		if p.Transform == "" {
			return ErrMissingFunction
		}
		if len(p.Seeds) != 1 {
			return ErrBadSeeds
		}
	case MethodNewton:
		if p.Function == "" {
			return ErrMissingFunction
		}
		if p.Derivative == "" {
			return ErrMissingDerivative
		}
		if len(p.Seeds) != 1 {
			return ErrBadSeeds
		}
	case MethodSecant:
		if p.Function == "" {
			return ErrMissingFunction
		}
		if len(p.Seeds) != 2 {
			return ErrBadSeeds
		}
	case MethodMuller:
		if len(p.Coefficients) == 0 {
			return ErrMissingFunction
		}
		if len(p.Seeds) != 3 {
			return ErrBadSeeds
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMethod, p.Method)
	}
	return nil
}

// RealSeeds parses the problem's seeds as float64 values.
func (p *Problem) RealSeeds() ([]float64, error) {
	out := make([]float64, len(p.Seeds))
	for i, s := range p.Seeds {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("config: seed %q: %w", s, err)
		}
		out[i] = f
	}
	return out, nil
}

// ComplexSeeds parses the problem's seeds as complex128 values; plain
// reals like "2" parse with a zero imaginary part.
func (p *Problem) ComplexSeeds() ([]complex128, error) {
	out := make([]complex128, len(p.Seeds))
	for i, s := range p.Seeds {
		z, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
		if err != nil {
			return nil, fmt.Errorf("config: seed %q: %w", s, err)
		}
		out[i] = z
	}
	return out, nil
}
