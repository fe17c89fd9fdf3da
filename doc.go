// Package perfprof computes performance profiles for comparing solvers.
//
// # Overview
//
// A performance profile (Dolan & Moré, 2002) answers: "on what share of the
// benchmark problems is a method within a factor τ of the best method?"
// perfprof builds profiles from a plain table of experiment results: one row
// per (problem, method) pair, one or more objective columns, and an optional
// feasibility column.
//
// # Quick Start
//
//	t := perfprof.NewTable()
//	_ = t.AddColumn(perfprof.IntColumn("problem", 1, 1, 2, 2, 3, 3))
//	_ = t.AddColumn(perfprof.StringColumn("method", "A", "B", "A", "B", "A", "B"))
//	_ = t.AddColumn(perfprof.FloatColumn("obj", 2, 20, 25, 5, 30, 4))
//
//	profile, err := perfprof.Calc(t, []string{"problem"}, []string{"obj"}, []string{"method"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mp, _ := profile.Measure("obj")
//	for _, s := range mp.Summaries {
//	    fmt.Printf("%s: ρ(1)=%.2f area=%.2f\n", s.Method, s.Efficiency, s.Area)
//	}
//
// # Ratios and Curves
//
// For problem p, method m and objective t:
//
//	r(p,m) = t(p,m) / min_m' t(p,m')
//	ρ_m(τ) = |{p : r(p,m) ≤ τ}| / |P|
//
// ρ_m(1) is the share of problems where m is the best (ties included).
// lim τ→∞ ρ_m(τ) is the share of problems m solves at all.
//
// A method solves a problem when the record is feasible, the objective is
// present and the objective is non-negative. Unsolved pairs get r = +Inf.
//
// # Problem Keys
//
// Problems may be identified by several columns. Rows that agree on every key
// column are one problem:
//
//	perfprof.Calc(t, []string{"var_1", "var_2"}, []string{"obj"}, []string{"method"})
//
// Composite keys render as tuples, e.g. "(1, 2)". Problems and methods keep
// the order in which they first appear in the table.
//
// # Diagnostics
//
// Input that is legal but may distort the profile produces a Warning, logged
// at WARN through Config.Logger and returned in Profile.Warnings:
//
//   - NEGATIVE_VALUES:     objective holds negative costs (counted as unsolved)
//   - INCOMPLETE_COVERAGE: a method solves fewer than 100% of problems
//   - UNSOLVED_PROBLEMS:   no method solves some problems
//   - DUPLICATE_RECORDS:   several rows for one (problem, method)
//
// A missing feasibility column is not a diagnostic: every record is feasible.
// Malformed input (missing columns, non-numeric objectives) returns an error.
//
// # Testing
//
// Assertion helpers check profile properties from tests:
//
//	func TestSolverRegression(t *testing.T) {
//	    profile := computeProfile(t)
//
//	    perfprof.AssertNoWarnings(t, profile)
//	    perfprof.AssertFullCoverage(t, profile, "time")
//	    perfprof.AssertDominates(t, profile, "time", "new", "old")
//	}
//
// # Collecting Results
//
// Collect runs every method on every problem concurrently and returns a table
// with problem, method, obj, time and feas columns, ready for Compute.
//
// # See Also
//
//   - examples/calc-perprof - the two reference scenarios
package perfprof
