package perfprof

import (
	"fmt"
	"math"
	"sort"
)

// Statistics describes the finite performance ratios of one method.
type Statistics struct {
	Count  int
	Mean   float64
	Stddev float64
	P50    float64
	P95    float64
	P99    float64
}

// RatioStatistics computes descriptive statistics over a method's finite ratios.
// Unsolved problems (+Inf) are excluded; Count says how many remained.
func RatioStatistics(mp *MeasureProfile, method string) (Statistics, error) {
	m := mp.methodIndex(method)
	if m < 0 {
		return Statistics{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	finite := make([]float64, 0, len(mp.Ratios[m]))
	for _, r := range mp.Ratios[m] {
		if !math.IsInf(r, 1) {
			finite = append(finite, r)
		}
	}
	return calculateStatistics(finite), nil
}

func calculateStatistics(values []float64) Statistics {
	if len(values) == 0 {
		return Statistics{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	var variance float64
	for _, v := range sorted {
		diff := v - mean
		variance += diff * diff
	}

	return Statistics{
		Count:  len(sorted),
		Mean:   mean,
		Stddev: math.Sqrt(variance / float64(len(sorted))),
		P50:    percentile(sorted, 0.50),
		P95:    percentile(sorted, 0.95),
		P99:    percentile(sorted, 0.99),
	}
}

// percentile returns the p-th percentile (0 < p < 1) of sorted values.
func percentile(sorted []float64, p float64) float64 {
	index := int(float64(len(sorted)-1) * p)
	if index < 0 {
		index = 0
	}
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}

// ShiftedGeometricMean returns (Π (v_i + shift))^(1/n) - shift.
//
// The shift damps the influence of very small costs (solver benchmarks commonly
// use shift = 10 for seconds). NaN values are skipped; negative values are
// skipped when v + shift ≤ 0. Returns NaN when nothing remains.
func ShiftedGeometricMean(values []float64, shift float64) float64 {
	var logSum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) || v+shift <= 0 {
			continue
		}
		logSum += math.Log(v + shift)
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return math.Exp(logSum/float64(n)) - shift
}

// Ranking is one entry of CompareMethods.
type Ranking struct {
	Summary
	SGM float64 // Shifted geometric mean of the solved costs
}

// CompareMethods ranks methods by profile area, breaking ties by ρ(1) and then
// by coverage. Label order is the final tie-break, so the ranking is deterministic.
func CompareMethods(mp *MeasureProfile, shift float64) []Ranking {
	out := make([]Ranking, len(mp.Summaries))
	for m, s := range mp.Summaries {
		out[m] = Ranking{Summary: s, SGM: ShiftedGeometricMean(mp.Values[m], shift)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Area != b.Area {
			return a.Area > b.Area
		}
		if a.Efficiency != b.Efficiency {
			return a.Efficiency > b.Efficiency
		}
		if a.Coverage != b.Coverage {
			return a.Coverage > b.Coverage
		}
		return a.Method < b.Method
	})
	return out
}
