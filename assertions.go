package perfprof

import (
	"fmt"
	"testing"
)

// AssertNoWarnings fails the test if the profile raised any diagnostic.
func AssertNoWarnings(t *testing.T, p *Profile) {
	t.Helper()

	if len(p.Warnings) == 0 {
		t.Logf("✓ No warnings: %d problems, %d methods", len(p.Problems), len(p.Methods))
		return
	}

	var lines []string
	for _, w := range p.Warnings {
		lines = append(lines, fmt.Sprintf("  [%s] %s", w.Kind, w.Message))
	}
	t.Errorf("Expected no warnings, got %d:\n%s", len(p.Warnings), lines)
}

// AssertWarning fails the test unless at least one warning of kind was raised.
func AssertWarning(t *testing.T, p *Profile, kind WarningKind) {
	t.Helper()

	found := p.WarningsOf(kind)
	if len(found) == 0 {
		t.Errorf("Expected a %s warning, got %d other warnings", kind, len(p.Warnings))
		return
	}
	t.Logf("✓ %s: %s", kind, found[0].Message)
}

// AssertFullCoverage verifies every method solves every problem for the measure.
//
// Mathematical property:
//
//	lim τ→∞ ρ_m(τ) = 1 for all m
func AssertFullCoverage(t *testing.T, p *Profile, measure string) {
	t.Helper()

	mp, ok := p.Measure(measure)
	if !ok {
		t.Fatalf("Unknown measure %q", measure)
	}

	var failures []string
	for _, s := range mp.Summaries {
		if s.Solved < len(p.Problems) {
			failures = append(failures, fmt.Sprintf(
				"  %s: %d/%d solved (%.1f%%)", s.Method, s.Solved, len(p.Problems), s.Coverage*100))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Incomplete coverage for %s:\n%s", measure, failures)
		return
	}
	t.Logf("✓ Full coverage: every method solves all %d problems", len(p.Problems))
}

// AssertDominates verifies method a's curve is never below method b's.
//
// Mathematical property:
//
//	ρ_a(τ) ≥ ρ_b(τ) for all τ on the grid
func AssertDominates(t *testing.T, p *Profile, measure, a, b string) {
	t.Helper()

	mp, ok := p.Measure(measure)
	if !ok {
		t.Fatalf("Unknown measure %q", measure)
	}
	ca, cb := mp.Curve(a), mp.Curve(b)
	if ca == nil || cb == nil {
		t.Fatalf("Unknown method %q or %q", a, b)
	}

	var failures []string
	for i := range ca {
		if ca[i].Fraction < cb[i].Fraction {
			failures = append(failures, fmt.Sprintf(
				"  τ=%.3f: ρ_%s=%.3f < ρ_%s=%.3f", ca[i].Tau, a, ca[i].Fraction, b, cb[i].Fraction))
		}
	}

	if len(failures) > 0 {
		t.Errorf("%s does not dominate %s on %s:\n%s", a, b, measure, failures)
		return
	}
	t.Logf("✓ %s dominates %s on %s", a, b, measure)
}

// PrintAnalysis outputs the profile summary to the test log.
func PrintAnalysis(t *testing.T, p *Profile) {
	t.Helper()

	t.Logf("\n=== Performance Profile ===")
	t.Logf("Problems: %d, Methods: %d", len(p.Problems), len(p.Methods))

	for i := range p.Measures {
		mp := &p.Measures[i]
		t.Logf("\n%s:", mp.Measure)
		t.Logf("  Method           Solved  Coverage  ρ(1)     Area")
		t.Logf("  ---------------  ------  --------  -------  ------")
		for _, s := range mp.Summaries {
			t.Logf("  %-15s  %6d  %7.1f%%  %6.1f%%  %6.3f",
				s.Method, s.Solved, s.Coverage*100, s.Efficiency*100, s.Area)
		}

		t.Logf("\n  Curve (τ → ρ):")
		for m, method := range p.Methods {
			var steps string
			for j, tau := range mp.Taus {
				steps += fmt.Sprintf(" %.2f→%.2f", mp.scale(tau), mp.Curves[m][j])
			}
			t.Logf("  %-15s%s", method, steps)
		}
	}

	if len(p.Warnings) > 0 {
		t.Logf("\nWarnings:")
		for _, w := range p.Warnings {
			t.Logf("  ⚠ [%s] %s", w.Kind, w.Message)
		}
	}
}
