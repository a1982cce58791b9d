package baseline

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func TestLinear_ExactLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{2, 4, 6, 8, 10}

	r := Linear(x, y)

	testutil.RequireSliceNearlyEqual(t, r.Baseline, y, 1e-12)
	testutil.RequireSliceNearlyEqual(t, r.Corrected, []float64{0, 0, 0, 0, 0}, 1e-12)
}

func TestLinear_DescendingAxis(t *testing.T) {
	x := []float64{4, 3, 2, 1, 0}
	y := []float64{10, 8, 6, 4, 2}

	r := Linear(x, y)

	testutil.RequireSliceNearlyEqual(t, r.Baseline, y, 1e-12)
}

func TestLinear_PeakAboveLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 1, 6, 1, 1}

	r := Linear(x, y)

	// The endpoints define a flat line at 1; only the peak survives.
	want := []float64{0, 0, 5, 0, 0}
	testutil.RequireSliceNearlyEqual(t, r.Corrected, want, 1e-12)
}

func TestLinear_ZeroXSpan(t *testing.T) {
	x := []float64{2, 2, 2}
	y := []float64{1, 5, 3}

	r := Linear(x, y)

	want := []float64{1, 1, 1}
	testutil.RequireSliceNearlyEqual(t, r.Baseline, want, 1e-12)
}

func TestLinear_Degenerate(t *testing.T) {
	if r := Linear([]float64{1, 2}, []float64{1, 2}); r.Baseline != nil {
		t.Error("2-point input: expected empty result")
	}

	if r := Linear([]float64{1, 2, 3}, []float64{1, 2}); r.Baseline != nil {
		t.Error("length mismatch: expected empty result")
	}
}

func TestPolynomial_Degree1OnLine(t *testing.T) {
	// All window minima lie on the line, so the fitted line reproduces it.
	x := testutil.Linspace(0, 99, 100)
	y := testutil.SlopedBaseline(x, 5, 0.5)

	r := Polynomial(x, y, 1)

	testutil.RequireSliceNearlyEqual(t, r.Baseline, y, 1e-9)
	for i, v := range r.Corrected {
		if v > 1e-9 {
			t.Errorf("corrected[%d] = %v, want ~0", i, v)
		}
	}
}

func TestPolynomial_AnchorsIgnorePeaks(t *testing.T) {
	x := testutil.Linspace(0, 199, 200)
	y := testutil.SlopedBaseline(x, 1, 0.01)
	testutil.AddGaussian(y, x, 100, 20, 2)

	r := Polynomial(x, y, 1)

	// The narrow peak spans few windows; window minima sit on the
	// background, so the baseline stays near it under the peak.
	if r.Baseline[100] > 5 {
		t.Errorf("baseline under peak = %v, want near background ~2", r.Baseline[100])
	}

	if r.Corrected[100] < 15 {
		t.Errorf("corrected peak = %v, want most of the peak height", r.Corrected[100])
	}
}

func TestPolynomial_HighDegreeInterpolates(t *testing.T) {
	x := testutil.Linspace(0, 99, 100)
	y := testutil.SlopedBaseline(x, 2, 0.1)

	r := Polynomial(x, y, 3)

	if len(r.Baseline) != len(y) {
		t.Fatalf("length: got %d, want %d", len(r.Baseline), len(y))
	}

	// Anchor interpolation through points on a line stays on the line
	// between the first and last anchor.
	for i := 10; i < 90; i++ {
		if math.Abs(r.Baseline[i]-y[i]) > 1e-9 {
			t.Fatalf("index %d: baseline %v, want %v", i, r.Baseline[i], y[i])
		}
	}
}

func TestPolynomial_DescendingAxis(t *testing.T) {
	x := testutil.Reversed(testutil.Linspace(0, 99, 100))
	y := testutil.SlopedBaseline(x, 2, 0.1)

	r := Polynomial(x, y, 3)

	if len(r.Baseline) != len(y) {
		t.Fatalf("length: got %d, want %d", len(r.Baseline), len(y))
	}

	testutil.RequireFinite(t, r.Baseline)
}

func TestPolynomial_Degenerate(t *testing.T) {
	if r := Polynomial([]float64{1, 2}, []float64{1, 2}, 1); r.Baseline != nil {
		t.Error("2-point input: expected empty result")
	}
}

func TestRecommendedLambda(t *testing.T) {
	ir := RecommendedLambda("IR")
	if ir.Default != 1e5 {
		t.Errorf("IR default: got %v, want 1e5", ir.Default)
	}

	raman := RecommendedLambda(" raman ")
	if raman.Default != 1e6 {
		t.Errorf("raman default: got %v, want 1e6", raman.Default)
	}

	unknown := RecommendedLambda("xrf")
	if unknown.Min >= unknown.Max || unknown.Default <= 0 {
		t.Errorf("unknown technique: got %+v, want a sane fallback range", unknown)
	}
}
