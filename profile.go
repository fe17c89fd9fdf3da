package perfprof

import (
	"fmt"
	"math"
)

// Columns names the table columns that play each role.
type Columns struct {
	Problem  []string // Problem key columns, tupled in order
	Measures []string // Objective columns, lower is better
	Method   []string // Method label columns, tupled in order
}

// Profile is the result of Compute: one MeasureProfile per objective column
// plus every diagnostic raised along the way.
type Profile struct {
	Problems []Key // In order of first appearance
	Methods  []Key // In order of first appearance
	Measures []MeasureProfile
	Warnings []Warning
}

// MeasureProfile holds the performance ratios and profile curves for one objective.
//
// Ratios, Values and Curves are indexed [method][...] in Profile.Methods order.
// Ratios[m][p] is +Inf when method m did not solve problem p.
type MeasureProfile struct {
	Measure   string
	Values    [][]float64 // Best feasible cost per (method, problem); NaN = unsolved
	Ratios    [][]float64
	Taus      []float64 // Ascending τ grid, always ≥ 1
	Curves    [][]float64
	Summaries []Summary
	LogScale  bool

	methods []Key
}

// Calc computes a profile with DefaultConfig.
//
// It mirrors the common four-argument call:
//
//	profile, err := perfprof.Calc(table, []string{"problem"}, []string{"obj"}, []string{"method"})
func Calc(t *Table, problem, measures, methods []string) (*Profile, error) {
	return Compute(t, Columns{Problem: problem, Measures: measures, Method: methods}, DefaultConfig())
}

// Compute calculates Dolan–Moré performance profiles.
//
// For each objective column, problem p and method m:
//
//	r(p,m) = t(p,m) / min{ t(p,m') : m' solved p }
//	ρ_m(τ) = |{ p : r(p,m) ≤ τ }| / |P|
//
// A method solves a problem when the record is feasible, the value is present
// and the value is non-negative. Legal but suspicious input produces warnings,
// not errors: negative values, methods below 100% coverage, problems nobody
// solves, duplicate records. A missing feasibility column is not a warning.
func Compute(t *Table, cols Columns, cfg Config) (*Profile, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	in, err := prepare(t, cols, cfg)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		Problems: in.problems.keys,
		Methods:  in.methods.keys,
		Measures: make([]MeasureProfile, 0, len(cols.Measures)),
	}

	for i, name := range cols.Measures {
		mp, warnings := computeMeasure(in, name, in.measures[i], cfg)
		mp.methods = p.Methods
		p.Measures = append(p.Measures, mp)
		p.Warnings = append(p.Warnings, warnings...)
	}

	l := cfg.logger()
	for _, w := range p.Warnings {
		w.log(l)
	}
	return p, nil
}

// input is the validated, keyed view of a table.
type input struct {
	problems   *keyIndex
	methods    *keyIndex
	rowProblem []int
	rowMethod  []int
	feasible   []bool
	measures   []Column
}

func prepare(t *Table, cols Columns, cfg Config) (*input, error) {
	switch {
	case t == nil:
		return nil, ErrNilTable
	case len(cols.Problem) == 0:
		return nil, ErrNoProblemColumns
	case len(cols.Measures) == 0:
		return nil, ErrNoMeasureColumns
	case len(cols.Method) == 0:
		return nil, ErrNoMethodColumns
	case t.Len() == 0:
		return nil, ErrEmptyTable
	}

	problemKeys, err := newKeyer(t, cols.Problem)
	if err != nil {
		return nil, fmt.Errorf("problem key: %w", err)
	}
	methodKeys, err := newKeyer(t, cols.Method)
	if err != nil {
		return nil, fmt.Errorf("method label: %w", err)
	}

	in := &input{
		problems:   newKeyIndex(),
		methods:    newKeyIndex(),
		rowProblem: make([]int, t.Len()),
		rowMethod:  make([]int, t.Len()),
		measures:   make([]Column, 0, len(cols.Measures)),
	}

	for _, name := range cols.Measures {
		c, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("objective %q: %w", name, ErrMissingColumn)
		}
		for row, v := range c.Values {
			if v.Kind() != KindNumber && v.Kind() != KindNull {
				return nil, fmt.Errorf("objective %q row %d holds %s %q: %w",
					name, row, v.Kind(), v.String(), ErrNotNumeric)
			}
		}
		in.measures = append(in.measures, c)
	}

	in.feasible, err = feasibility(t, cfg.FeasibilityColumn)
	if err != nil {
		return nil, err
	}

	for row := 0; row < t.Len(); row++ {
		in.rowProblem[row] = in.problems.add(problemKeys.key(row))
		in.rowMethod[row] = in.methods.add(methodKeys.key(row))
	}
	return in, nil
}

// feasibility reads the feasibility flags. A missing column means every record
// is feasible. Numbers are accepted as flags (non-zero = feasible), nulls are infeasible.
func feasibility(t *Table, name string) ([]bool, error) {
	flags := make([]bool, t.Len())

	c, ok := t.Column(name)
	if !ok {
		for i := range flags {
			flags[i] = true
		}
		return flags, nil
	}

	for row, v := range c.Values {
		switch v.Kind() {
		case KindBool:
			flags[row], _ = v.Truth()
		case KindNumber:
			f, _ := v.Float()
			flags[row] = f != 0 && !math.IsNaN(f)
		case KindNull:
			flags[row] = false
		default:
			return nil, fmt.Errorf("feasibility %q row %d holds %s %q: %w",
				name, row, v.Kind(), v.String(), ErrNotBool)
		}
	}
	return flags, nil
}

func computeMeasure(in *input, name string, c Column, cfg Config) (MeasureProfile, []Warning) {
	nProblems := len(in.problems.keys)
	nMethods := len(in.methods.keys)

	values := make([][]float64, nMethods)
	seen := make([][]int, nMethods)
	for m := range values {
		values[m] = make([]float64, nProblems)
		seen[m] = make([]int, nProblems)
		for p := range values[m] {
			values[m][p] = math.NaN()
		}
	}

	var negatives, duplicates int
	for row, v := range c.Values {
		p, m := in.rowProblem[row], in.rowMethod[row]
		seen[m][p]++
		if seen[m][p] == 2 {
			duplicates++
		}

		f, ok := v.Float()
		if !ok || math.IsNaN(f) || math.IsInf(f, 1) {
			continue
		}
		if f < 0 {
			negatives++
			continue
		}
		if !in.feasible[row] {
			continue
		}
		if math.IsNaN(values[m][p]) || f < values[m][p] {
			values[m][p] = f
		}
	}

	ratios := performanceRatios(values, cfg.Floor)

	mp := MeasureProfile{
		Measure:  name,
		Values:   values,
		Ratios:   ratios,
		LogScale: cfg.LogScale,
	}
	mp.Taus = tauGrid(ratios, cfg.Taus, cfg.MaxTau)
	mp.Curves = make([][]float64, nMethods)
	for m := range ratios {
		mp.Curves[m] = profileCurve(ratios[m], mp.Taus)
	}
	mp.Summaries = make([]Summary, nMethods)
	for m := range ratios {
		mp.Summaries[m] = summarize(in.methods.keys[m], ratios[m], mp.Taus, mp.Curves[m])
	}

	var warnings []Warning
	if duplicates > 0 {
		warnings = append(warnings, Warning{
			Kind:    WarnDuplicateRecords,
			Measure: name,
			Count:   duplicates,
			Message: fmt.Sprintf("%d duplicate (problem, method) records for %s; keeping the best feasible value",
				duplicates, name),
		})
	}
	if negatives > 0 {
		warnings = append(warnings, Warning{
			Kind:    WarnNegativeValues,
			Measure: name,
			Count:   negatives,
			Message: fmt.Sprintf("%s has %d negative values; performance ratios need non-negative costs, "+
				"negative records are counted as unsolved", name, negatives),
		})
	}
	if unsolved := unsolvedProblems(ratios, nProblems); unsolved > 0 {
		warnings = append(warnings, Warning{
			Kind:    WarnUnsolvedProblems,
			Measure: name,
			Count:   unsolved,
			Message: fmt.Sprintf("%d of %d problems are not solved by any method for %s",
				unsolved, nProblems, name),
		})
	}
	for _, s := range mp.Summaries {
		if s.Solved == nProblems {
			continue
		}
		warnings = append(warnings, Warning{
			Kind:    WarnIncompleteCoverage,
			Measure: name,
			Method:  s.Method,
			Count:   nProblems - s.Solved,
			Message: fmt.Sprintf("method %s is not solving 100 percent of problems for %s: %.1f%% (%d/%d)",
				s.Method, name, s.Coverage*100, s.Solved, nProblems),
		})
	}
	return mp, warnings
}

// performanceRatios divides each solved cost by the best cost on its problem.
func performanceRatios(values [][]float64, floor float64) [][]float64 {
	ratios := make([][]float64, len(values))
	if len(values) == 0 {
		return ratios
	}
	nProblems := len(values[0])

	best := make([]float64, nProblems)
	for p := range best {
		best[p] = math.NaN()
		for m := range values {
			v := values[m][p]
			if !math.IsNaN(v) && (math.IsNaN(best[p]) || v < best[p]) {
				best[p] = v
			}
		}
	}

	for m := range values {
		ratios[m] = make([]float64, nProblems)
		for p, v := range values[m] {
			if math.IsNaN(v) {
				ratios[m][p] = math.Inf(1)
				continue
			}
			ratios[m][p] = math.Max(v, floor) / math.Max(best[p], floor)
		}
	}
	return ratios
}

func unsolvedProblems(ratios [][]float64, nProblems int) int {
	unsolved := 0
	for p := 0; p < nProblems; p++ {
		solved := false
		for m := range ratios {
			if !math.IsInf(ratios[m][p], 1) {
				solved = true
				break
			}
		}
		if !solved {
			unsolved++
		}
	}
	return unsolved
}

// Measure returns the profile for the named objective column.
func (p *Profile) Measure(name string) (*MeasureProfile, bool) {
	for i := range p.Measures {
		if p.Measures[i].Measure == name {
			return &p.Measures[i], true
		}
	}
	return nil, false
}

// HasWarning reports whether any warning of the given kind was raised.
func (p *Profile) HasWarning(kind WarningKind) bool {
	return len(p.WarningsOf(kind)) > 0
}

// WarningsOf returns the warnings of the given kind, in emission order.
func (p *Profile) WarningsOf(kind WarningKind) []Warning {
	var out []Warning
	for _, w := range p.Warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}
