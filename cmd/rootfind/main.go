// Command rootfind runs a YAML study of root-finding problems and renders
// a per-iteration comparison table (or CSV for plotting).
//
//	rootfind -config study.yaml -format pretty
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/rootfind/config"
	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/report"
	"github.com/katalvlaran/rootfind/solver"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Println(`{"op": "main", "level": "fatal", "msg": "failed to initiate logger"}`)
		panic(err)
	}
	defer logger.Sync()

	studyPath := flag.String("config", "study.yaml", "path to the study file")
	format := flag.String("format", "pretty", "output format: pretty or csv")
	flag.Parse()

	study, err := config.LoadStudy(*studyPath)
	if err != nil {
		logger.Fatal(fmt.Sprintf("failed to load study at %s", *studyPath),
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	runID := uuid.New().String()
	logger.Info("starting study",
		zap.String("op", "main"),
		zap.String("run", runID),
		zap.String("study", study.Name),
		zap.Int("problems", len(study.Problems)),
	)

	series := make([]report.Series, 0, len(study.Problems))
	for i := range study.Problems {
		p := &study.Problems[i]
		s, err := runProblem(p, study)
		if err != nil {
			logger.Error("problem failed",
				zap.String("op", "main"),
				zap.String("run", runID),
				zap.String("problem", p.Name),
				zap.Error(err),
			)
			continue
		}
		logger.Info("problem finished",
			zap.String("op", "main"),
			zap.String("run", runID),
			zap.String("problem", p.Name),
			zap.String("reason", s.Reason),
			zap.Int("iterations", len(s.Estimates)),
		)
		series = append(series, s)
	}

	switch *format {
	case "csv":
		err = report.CSV(os.Stdout, series)
	default:
		err = report.Comparison(os.Stdout, series)
	}
	if err != nil {
		logger.Fatal("failed to render report",
			zap.String("op", "main"),
			zap.String("run", runID),
			zap.Error(err),
		)
	}
}

// options layers the study defaults and the per-problem overrides over
// the library defaults.
func options(p *config.Problem, s *config.Study) solver.Options {
	opts := solver.DefaultOptions()
	if s.Tolerance > 0 {
		opts.Tol = s.Tolerance
	}
	if s.MaxIterations > 0 {
		opts.MaxIter = s.MaxIterations
	}
	if p.Tolerance > 0 {
		opts.Tol = p.Tolerance
	}
	if p.MaxIterations > 0 {
		opts.MaxIter = p.MaxIterations
	}
	return opts
}

// runProblem compiles the problem's functions and dispatches it to the
// method named in the study. A non-converging trace is a normal outcome;
// only compile/config failures return an error.
func runProblem(p *config.Problem, s *config.Study) (report.Series, error) {
	opts := options(p, s)

	switch strings.ToLower(p.Method) {
	case config.MethodBisection:
		f, err := expr.New(p.Function)
		if err != nil {
			return report.Series{}, err
		}
		tr, err := solver.Bisection(f, p.Bracket[0], p.Bracket[1], opts)
		if err != nil {
			return report.Series{}, err
		}
		return newSeries(p.Name, solver.Estimates(tr), tr.Reason()), nil

	case config.MethodFalsePosition:
		f, err := expr.New(p.Function)
		if err != nil {
			return report.Series{}, err
		}
		tr, err := solver.FalsePosition(f, p.Bracket[0], p.Bracket[1], opts)
		if err != nil {
			return report.Series{}, err
		}
		return newSeries(p.Name, solver.Estimates(tr), tr.Reason()), nil

	case config.MethodFixedPoint:
		g, err := expr.New(p.Transform)
		if err != nil {
			return report.Series{}, err
		}
		seeds, err := p.RealSeeds()
		if err != nil {
			return report.Series{}, err
		}
		tr, err := solver.FixedPoint(g, seeds[0], opts)
		if err != nil {
			return report.Series{}, err
		}
		return newSeries(p.Name, solver.Estimates(tr), tr.Reason()), nil

	case config.MethodNewton:
		f, err := expr.New(p.Function)
		if err != nil {
			return report.Series{}, err
		}
		df, err := expr.New(p.Derivative)
		if err != nil {
			return report.Series{}, err
		}
		seeds, err := p.RealSeeds()
		if err != nil {
			return report.Series{}, err
		}
		tr, err := solver.NewtonRaphson(f, df, seeds[0], opts)
		if err != nil {
			return report.Series{}, err
		}
		return newSeries(p.Name, solver.Estimates(tr), tr.Reason()), nil

	case config.MethodSecant:
		f, err := expr.New(p.Function)
		if err != nil {
			return report.Series{}, err
		}
		seeds, err := p.RealSeeds()
		if err != nil {
			return report.Series{}, err
		}
		tr, err := solver.Secant(f, seeds[0], seeds[1], opts)
		if err != nil {
			return report.Series{}, err
		}
		return newSeries(p.Name, solver.Estimates(tr), tr.Reason()), nil

	case config.MethodMuller:
		f := expr.Polynomial(p.Coefficients...)
		seeds, err := p.ComplexSeeds()
		if err != nil {
			return report.Series{}, err
		}
		tr, err := solver.Muller(f, seeds[0], seeds[1], seeds[2], opts)
		if err != nil {
			return report.Series{}, err
		}
		return newSeries(p.Name, solver.Estimates(tr), tr.Reason()), nil
	}
	return report.Series{}, fmt.Errorf("%w: %q", config.ErrUnknownMethod, p.Method)
}

func newSeries(name string, estimates []complex128, reason solver.Reason) report.Series {
	return report.Series{Name: name, Estimates: estimates, Reason: reason.String()}
}
