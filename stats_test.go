package perfprof

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatioStatistics(t *testing.T) {
	p, err := Compute(scenarioTwo(t), compositeColumns(), quietConfig(&bytes.Buffer{}))
	require.NoError(t, err)
	mp, _ := p.Measure("obj")

	stats, err := RatioStatistics(mp, "B")
	require.NoError(t, err)

	// B ratios on solved problems: 10, 1, 1, 1, 1
	if stats.Count != 5 {
		t.Errorf("Expected 5 finite ratios, got %d", stats.Count)
	}
	if !floatsEqual(stats.Mean, 14.0/5) {
		t.Errorf("Mean = %v, want 2.8", stats.Mean)
	}
	if stats.P50 != 1 {
		t.Errorf("P50 = %v, want 1", stats.P50)
	}
	if stats.P99 != 1 {
		// index int(4 × 0.99) = 3
		t.Errorf("P99 = %v, want 1", stats.P99)
	}
	if !floatsEqual(stats.Stddev, 3.6) {
		t.Errorf("Stddev = %v, want 3.6", stats.Stddev)
	}

	_, err = RatioStatistics(mp, "C")
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestCalculateStatistics_Empty(t *testing.T) {
	if got := calculateStatistics(nil); got != (Statistics{}) {
		t.Errorf("Expected zero statistics, got %+v", got)
	}
}

func TestShiftedGeometricMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		shift  float64
		want   float64
	}{
		{"no shift", []float64{1, 4, 16}, 0, 4},
		{"shift 1", []float64{0, 3, 15}, 1, 3}, // (1·4·16)^(1/3) - 1
		{"skips NaN", []float64{2, math.NaN(), 8}, 0, 4},
		{"skips non-positive", []float64{-5, 9}, 1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShiftedGeometricMean(tt.values, tt.shift)
			if !floatsEqual(got, tt.want) {
				t.Errorf("SGM = %v, want %v", got, tt.want)
			}
		})
	}

	if !math.IsNaN(ShiftedGeometricMean([]float64{math.NaN()}, 0)) {
		t.Error("Expected NaN when nothing remains")
	}
}

func TestCompareMethods(t *testing.T) {
	p, err := Compute(scenarioOne(t), scenarioColumns(), quietConfig(&bytes.Buffer{}))
	require.NoError(t, err)
	mp, _ := p.Measure("obj")

	ranking := CompareMethods(mp, 0)
	if len(ranking) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(ranking))
	}
	if ranking[0].Method != "B" {
		t.Errorf("Expected B first (larger area), got %s", ranking[0].Method)
	}

	// SGM of B's costs 20, 5, 4 = 400^(1/3)
	if !floatsEqual(ranking[0].SGM, math.Cbrt(400)) {
		t.Errorf("B SGM = %v, want %v", ranking[0].SGM, math.Cbrt(400))
	}

	for i, r := range ranking {
		t.Logf("  %d. %-4s area=%.3f ρ(1)=%.2f sgm=%.2f", i+1, r.Method, r.Area, r.Efficiency, r.SGM)
	}
}

func TestAssertDominates_FasterMethod(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.AddColumn(StringColumn("problem", "p1", "p1", "p2", "p2", "p3", "p3")))
	require.NoError(t, tbl.AddColumn(StringColumn("method", "new", "old", "new", "old", "new", "old")))
	require.NoError(t, tbl.AddColumn(FloatColumn("time", 1, 2, 3, 3, 0.5, 4)))

	cols := Columns{Problem: []string{"problem"}, Measures: []string{"time"}, Method: []string{"method"}}
	p, err := Compute(tbl, cols, quietConfig(&bytes.Buffer{}))
	require.NoError(t, err)

	AssertNoWarnings(t, p)
	AssertFullCoverage(t, p, "time")
	AssertDominates(t, p, "time", "new", "old")
}
