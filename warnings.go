package perfprof

import (
	"context"
	"log/slog"
)

// WarningKind classifies a non-fatal diagnostic.
type WarningKind string

const (
	WarnNegativeValues     WarningKind = "NEGATIVE_VALUES"     // Objective column holds negative costs
	WarnIncompleteCoverage WarningKind = "INCOMPLETE_COVERAGE" // Method solves < 100% of problems
	WarnUnsolvedProblems   WarningKind = "UNSOLVED_PROBLEMS"   // No method solves some problems
	WarnDuplicateRecords   WarningKind = "DUPLICATE_RECORDS"   // Several rows for one (problem, method)
)

// Warning is a diagnostic about input that is legal but may distort the profile.
type Warning struct {
	Kind    WarningKind
	Measure string
	Method  string // Empty unless the warning concerns one method
	Count   int    // Number of offending records or problems
	Message string
}

func (w Warning) log(l *slog.Logger) {
	attrs := []slog.Attr{
		slog.String("kind", string(w.Kind)),
		slog.String("measure", w.Measure),
		slog.Int("count", w.Count),
	}
	if w.Method != "" {
		attrs = append(attrs, slog.String("method", w.Method))
	}
	l.LogAttrs(context.Background(), slog.LevelWarn, w.Message, attrs...)
}
