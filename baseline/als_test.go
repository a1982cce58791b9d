package baseline

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

// requireCorrectedProperty checks corrected[i] == max(0, y[i]-baseline[i]).
func requireCorrectedProperty(t *testing.T, y []float64, r Result) {
	t.Helper()

	if len(r.Baseline) != len(y) || len(r.Corrected) != len(y) {
		t.Fatalf("result length mismatch: baseline %d, corrected %d, y %d", len(r.Baseline), len(r.Corrected), len(y))
	}

	for i := range y {
		want := math.Max(0, y[i]-r.Baseline[i])
		if math.Abs(r.Corrected[i]-want) > 1e-12 {
			t.Fatalf("index %d: corrected %v, want %v", i, r.Corrected[i], want)
		}
	}
}

func TestALS_FlatSignal(t *testing.T) {
	y := make([]float64, 40)
	for i := range y {
		y[i] = 3.5
	}

	r := ALS(y, DefaultALSParams())

	testutil.RequireSliceNearlyEqual(t, r.Baseline, y, 1e-5)
	for i, v := range r.Corrected {
		if v > 1e-5 {
			t.Errorf("corrected[%d] = %v, want ~0", i, v)
		}
	}
}

func TestALS_CorrectedProperty(t *testing.T) {
	x := testutil.Linspace(0, 40, 41)
	y := testutil.SlopedBaseline(x, 2, 0.1)
	testutil.AddGaussian(y, x, 20, 5, 2)

	r := ALS(y, DefaultALSParams())

	requireCorrectedProperty(t, y, r)
	testutil.RequireFinite(t, r.Baseline)
}

func TestALS_TracksLowerEnvelope(t *testing.T) {
	// A single strong peak on a sloped background: the baseline must stay
	// well below the peak top so the corrected peak survives.
	x := testutil.Linspace(0, 40, 41)
	y := testutil.SlopedBaseline(x, 1, 0.05)
	testutil.AddGaussian(y, x, 20, 10, 1.5)

	r := ALS(y, ALSParams{Lambda: 100, Asymmetry: 0.01, MaxIterations: 10})

	peakIdx := 20
	if r.Baseline[peakIdx] > y[peakIdx]-5 {
		t.Errorf("baseline %v too close to peak %v", r.Baseline[peakIdx], y[peakIdx])
	}

	if r.Corrected[peakIdx] < 5 {
		t.Errorf("corrected peak %v, want > 5", r.Corrected[peakIdx])
	}
}

func TestALS_Degenerate(t *testing.T) {
	if r := ALS(nil, DefaultALSParams()); r.Baseline != nil {
		t.Error("nil input: expected empty result")
	}

	if r := ALS([]float64{1, 2}, DefaultALSParams()); r.Baseline != nil {
		t.Error("2-point input: expected empty result")
	}
}

func TestALS_ParameterSanitizing(t *testing.T) {
	y := []float64{1, 2, 3, 2, 1, 2, 3, 2, 1}

	// Out-of-range parameters fall back to defaults instead of failing.
	r := ALS(y, ALSParams{Lambda: -1, Asymmetry: 7, MaxIterations: 1000})

	if len(r.Baseline) != len(y) {
		t.Fatalf("expected a result despite bad parameters, got length %d", len(r.Baseline))
	}

	testutil.RequireFinite(t, r.Baseline)
}

func TestALSFast_FlatSignal(t *testing.T) {
	y := make([]float64, 30)
	for i := range y {
		y[i] = -1.25
	}

	r := ALSFast(y, DefaultALSParams())

	testutil.RequireSliceNearlyEqual(t, r.Baseline, y, 1e-5)
}

func TestALSFast_CorrectedProperty(t *testing.T) {
	x := testutil.Linspace(0, 100, 101)
	y := testutil.SlopedBaseline(x, 0.5, 0.02)
	testutil.AddGaussian(y, x, 50, 3, 4)

	r := ALSFast(y, DefaultALSParams())

	requireCorrectedProperty(t, y, r)
}

func TestALSFast_Degenerate(t *testing.T) {
	if r := ALSFast([]float64{1}, DefaultALSParams()); r.Baseline != nil {
		t.Error("1-point input: expected empty result")
	}
}

func TestAuto_SelectsFastForLargeSpectra(t *testing.T) {
	n := 2500
	y := testutil.DeterministicNoise(7, 0.1, n)
	for i := range y {
		y[i] += 2
	}

	auto := Auto(y, DefaultALSParams())
	fast := ALSFast(y, DefaultALSParams())

	testutil.RequireSliceNearlyEqual(t, auto.Baseline, fast.Baseline, 0)
}

func TestAuto_SelectsFullForSmallSpectra(t *testing.T) {
	y := []float64{1, 1, 1, 1, 1, 1}

	auto := Auto(y, DefaultALSParams())
	full := ALS(y, DefaultALSParams())

	testutil.RequireSliceNearlyEqual(t, auto.Baseline, full.Baseline, 0)
}
