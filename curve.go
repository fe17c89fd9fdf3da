package perfprof

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
)

// Point is one step of a profile curve.
type Point struct {
	Tau      float64 // τ, or log2(τ) when the profile uses a log scale
	Fraction float64 // ρ(τ): share of problems solved within factor τ of the best
}

// Summary condenses one method's curve.
type Summary struct {
	Method     string
	Solved     int     // Problems solved at any τ
	Coverage   float64 // Solved / all problems; the curve's limit as τ → ∞
	Efficiency float64 // ρ(1): share of problems where the method is (one of) the best
	Area       float64 // Normalised area under ρ over log2 τ; 1.0 = best everywhere
	MaxRatio   float64 // Largest finite ratio (0 when nothing solved)
}

// tauGrid builds the ascending τ grid. An explicit grid wins; otherwise every
// distinct finite ratio is a breakpoint, which is exactly where ρ changes.
func tauGrid(ratios [][]float64, explicit []float64, maxTau float64) []float64 {
	var taus []float64
	if len(explicit) > 0 {
		taus = append(taus, explicit...)
	} else {
		taus = append(taus, 1)
		for _, rs := range ratios {
			for _, r := range rs {
				if math.IsInf(r, 1) || math.IsNaN(r) {
					continue
				}
				if maxTau > 0 && r > maxTau {
					continue
				}
				taus = append(taus, r)
			}
		}
		if maxTau > 0 {
			taus = append(taus, maxTau)
		}
	}

	sort.Float64s(taus)
	out := taus[:0]
	for i, tau := range taus {
		if i > 0 && tau == out[len(out)-1] {
			continue
		}
		out = append(out, tau)
	}
	return out
}

// profileCurve evaluates ρ(τ) for one method on the grid.
func profileCurve(ratios []float64, taus []float64) []float64 {
	sorted := make([]float64, len(ratios))
	copy(sorted, ratios)
	sort.Float64s(sorted)

	curve := make([]float64, len(taus))
	if len(sorted) == 0 {
		return curve
	}
	for i, tau := range taus {
		within := sort.Search(len(sorted), func(j int) bool { return sorted[j] > tau })
		curve[i] = float64(within) / float64(len(sorted))
	}
	return curve
}

func summarize(method Key, ratios, taus, curve []float64) Summary {
	s := Summary{Method: method.String()}
	for _, r := range ratios {
		if math.IsInf(r, 1) {
			continue
		}
		s.Solved++
		if r <= 1 {
			s.Efficiency++
		}
		if r > s.MaxRatio {
			s.MaxRatio = r
		}
	}
	if len(ratios) > 0 {
		s.Coverage = float64(s.Solved) / float64(len(ratios))
		s.Efficiency /= float64(len(ratios))
	}
	s.Area = curveArea(taus, curve)
	return s
}

// curveArea integrates the right-continuous step curve over log2 τ from the
// first to the last grid point and normalises by the interval length.
// A single-point grid degenerates to ρ at that point.
func curveArea(taus, curve []float64) float64 {
	if len(taus) == 0 {
		return 0
	}
	span := math.Log2(taus[len(taus)-1]) - math.Log2(taus[0])
	if span <= 0 {
		return curve[0]
	}
	var area float64
	for i := 0; i+1 < len(taus); i++ {
		area += curve[i] * (math.Log2(taus[i+1]) - math.Log2(taus[i]))
	}
	return area / span
}

func (mp *MeasureProfile) methodIndex(method string) int {
	for i, k := range mp.methods {
		if k.String() == method {
			return i
		}
	}
	return -1
}

// Curve returns the profile curve of the named method, or nil if unknown.
func (mp *MeasureProfile) Curve(method string) []Point {
	m := mp.methodIndex(method)
	if m < 0 {
		return nil
	}
	points := make([]Point, len(mp.Taus))
	for i, tau := range mp.Taus {
		points[i] = Point{Tau: mp.scale(tau), Fraction: mp.Curves[m][i]}
	}
	return points
}

// At evaluates ρ(τ) for the named method at an arbitrary τ (unscaled).
func (mp *MeasureProfile) At(method string, tau float64) (float64, bool) {
	m := mp.methodIndex(method)
	if m < 0 {
		return 0, false
	}
	return profileCurve(mp.Ratios[m], []float64{tau})[0], true
}

// Summary returns the summary of the named method.
func (mp *MeasureProfile) Summary(method string) (Summary, bool) {
	m := mp.methodIndex(method)
	if m < 0 {
		return Summary{}, false
	}
	return mp.Summaries[m], true
}

func (mp *MeasureProfile) scale(tau float64) float64 {
	if mp.LogScale {
		return math.Log2(tau)
	}
	return tau
}

// WriteCSV writes the curves as a plotting dataset with the header
// measure,method,tau,fraction.
func (p *Profile) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"measure", "method", "tau", "fraction"}); err != nil {
		return err
	}
	for i := range p.Measures {
		mp := &p.Measures[i]
		for m, method := range p.Methods {
			for j, tau := range mp.Taus {
				record := []string{
					mp.Measure,
					method.String(),
					strconv.FormatFloat(mp.scale(tau), 'g', -1, 64),
					strconv.FormatFloat(mp.Curves[m][j], 'g', -1, 64),
				}
				if err := cw.Write(record); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// Report writes a human-readable summary of every measure and warning.
func (p *Profile) Report(w io.Writer) error {
	ew := &errWriter{w: w}

	ew.printf("Performance profile: %d problems, %d methods\n", len(p.Problems), len(p.Methods))
	for i := range p.Measures {
		mp := &p.Measures[i]
		ew.printf("\n=== %s ===\n", mp.Measure)
		ew.printf("  %-16s %8s %10s %10s %8s %10s\n",
			"Method", "Solved", "Coverage", "ρ(1)", "Area", "MaxRatio")
		for _, s := range mp.Summaries {
			ew.printf("  %-16s %8d %9.1f%% %9.1f%% %8.3f %10.3f\n",
				s.Method, s.Solved, s.Coverage*100, s.Efficiency*100, s.Area, s.MaxRatio)
		}
	}

	if len(p.Warnings) > 0 {
		ew.printf("\nWarnings:\n")
		for _, wn := range p.Warnings {
			ew.printf("  ⚠ [%s] %s\n", wn.Kind, wn.Message)
		}
	}
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
