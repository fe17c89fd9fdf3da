package perfprof

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Problem is one benchmark instance handed to every method.
type Problem struct {
	Name string
	Data any // Solver-specific payload
}

// Outcome is what a solver reports for one problem.
type Outcome struct {
	Value    float64 // Objective value, lower is better
	Feasible bool
}

// SolverFunc solves one problem. Implementations must be safe for concurrent use.
// A returned error marks the record infeasible; it does not stop collection.
type SolverFunc func(ctx context.Context, p Problem) (Outcome, error)

// Method is a named solver under comparison.
type Method struct {
	Name  string
	Solve SolverFunc
}

// CollectConfig controls Collect. Blank column names take their
// DefaultCollectConfig values.
type CollectConfig struct {
	Workers int           // Concurrent runs (default: GOMAXPROCS)
	Timeout time.Duration // Per-run limit; a timed-out run is infeasible (0 = none)

	ProblemColumn     string
	MethodColumn      string
	ValueColumn       string // Outcome.Value
	TimeColumn        string // Wall time in seconds
	FeasibilityColumn string

	Logger *slog.Logger
}

// DefaultCollectConfig returns column names that match DefaultConfig.
func DefaultCollectConfig() CollectConfig {
	return CollectConfig{
		Workers:           runtime.GOMAXPROCS(0),
		ProblemColumn:     "problem",
		MethodColumn:      "method",
		ValueColumn:       "obj",
		TimeColumn:        "time",
		FeasibilityColumn: "feas",
	}
}

// withDefaults fills blank column names from DefaultCollectConfig.
func (c CollectConfig) withDefaults() CollectConfig {
	d := DefaultCollectConfig()
	for _, f := range []struct {
		dst *string
		def string
	}{
		{&c.ProblemColumn, d.ProblemColumn},
		{&c.MethodColumn, d.MethodColumn},
		{&c.ValueColumn, d.ValueColumn},
		{&c.TimeColumn, d.TimeColumn},
		{&c.FeasibilityColumn, d.FeasibilityColumn},
	} {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}
	return c
}

func (c CollectConfig) checkColumns() error {
	seen := make(map[string]bool, 5)
	for _, name := range []string{c.ProblemColumn, c.MethodColumn, c.ValueColumn, c.TimeColumn, c.FeasibilityColumn} {
		if seen[name] {
			return fmt.Errorf("column %q used twice: %w", name, ErrInvalidConfig)
		}
		seen[name] = true
	}
	return nil
}

type run struct {
	outcome  Outcome
	elapsed  time.Duration
	solveErr error
}

// Collect runs every method on every problem and returns one row per
// (problem, method) pair, ordered problem-major, ready for Compute:
//
//	table, err := perfprof.Collect(ctx, problems, methods, perfprof.DefaultCollectConfig())
//	profile, err := perfprof.Calc(table, []string{"problem"}, []string{"time"}, []string{"method"})
//
// Failed or timed-out runs get a null value and feasibility false. Collect
// only returns an error for bad arguments or when ctx is cancelled.
func Collect(ctx context.Context, problems []Problem, methods []Method, cfg CollectConfig) (*Table, error) {
	if len(problems) == 0 {
		return nil, ErrEmptyTable
	}
	if len(methods) == 0 {
		return nil, ErrNoMethodColumns
	}
	for _, m := range methods {
		if m.Solve == nil {
			return nil, fmt.Errorf("method %q has no solver: %w", m.Name, ErrInvalidConfig)
		}
	}
	cfg = cfg.withDefaults()
	if err := cfg.checkColumns(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	runs := make([]run, len(problems)*len(methods))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for pi, p := range problems {
		for mi, m := range methods {
			slot := &runs[pi*len(methods)+mi]
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				*slot = solveOnce(gctx, m.Solve, p, cfg.Timeout)
				if slot.solveErr != nil {
					logger.Debug("solver failed",
						"problem", p.Name, "method", m.Name, "error", slot.solveErr)
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}

	return buildRunTable(problems, methods, runs, cfg)
}

func solveOnce(ctx context.Context, solve SolverFunc, p Problem, timeout time.Duration) run {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	outcome, err := solve(ctx, p)
	elapsed := time.Since(start)

	if err == nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = ctx.Err()
	}
	return run{outcome: outcome, elapsed: elapsed, solveErr: err}
}

func buildRunTable(problems []Problem, methods []Method, runs []run, cfg CollectConfig) (*Table, error) {
	n := len(runs)
	problemCol := Column{Name: cfg.ProblemColumn, Values: make([]Value, n)}
	methodCol := Column{Name: cfg.MethodColumn, Values: make([]Value, n)}
	valueCol := Column{Name: cfg.ValueColumn, Values: make([]Value, n)}
	timeCol := Column{Name: cfg.TimeColumn, Values: make([]Value, n)}
	feasCol := Column{Name: cfg.FeasibilityColumn, Values: make([]Value, n)}

	for i, r := range runs {
		problemCol.Values[i] = String(problems[i/len(methods)].Name)
		methodCol.Values[i] = String(methods[i%len(methods)].Name)
		if r.solveErr != nil {
			feasCol.Values[i] = Bool(false)
			continue
		}
		valueCol.Values[i] = Number(r.outcome.Value)
		timeCol.Values[i] = Number(r.elapsed.Seconds())
		feasCol.Values[i] = Bool(r.outcome.Feasible)
	}

	t := NewTable()
	for _, c := range []Column{problemCol, methodCol, valueCol, timeCol, feasCol} {
		if err := t.AddColumn(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}
