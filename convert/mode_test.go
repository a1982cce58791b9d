package convert

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func TestAbsorbanceToTransmittance_Known(t *testing.T) {
	// A=1 means 10% transmittance.
	testutil.RequireNearlyEqual(t, AbsorbanceToTransmittance(1.0), 10, 1e-9)
	testutil.RequireNearlyEqual(t, AbsorbanceToTransmittance(0), 100, 1e-9)
	testutil.RequireNearlyEqual(t, AbsorbanceToTransmittance(2), 1, 1e-9)
}

func TestTransmittanceToAbsorbance_Known(t *testing.T) {
	testutil.RequireNearlyEqual(t, TransmittanceToAbsorbance(10), 1, 1e-9)
	testutil.RequireNearlyEqual(t, TransmittanceToAbsorbance(100), 0, 1e-9)
}

func TestModeConversion_Clamping(t *testing.T) {
	// Degenerate inputs clamp into the safe domain instead of producing
	// infinities.
	if v := AbsorbanceToTransmittance(500); math.IsInf(v, 0) || math.IsNaN(v) || v <= 0 {
		t.Errorf("extreme absorbance: got %v, want small positive", v)
	}

	if v := TransmittanceToAbsorbance(0); math.IsInf(v, 0) || math.IsNaN(v) {
		t.Errorf("zero transmittance: got %v, want finite", v)
	}

	if v := TransmittanceToAbsorbance(-3); math.IsInf(v, 0) || math.IsNaN(v) {
		t.Errorf("negative transmittance: got %v, want finite", v)
	}
}

func TestValues_RoundTrip(t *testing.T) {
	y := []float64{0.05, 0.5, 1.0, 2.5, 4.0}

	tr := Values(y, ModeAbsorbance, ModeTransmittance)
	back := Values(tr, ModeTransmittance, ModeAbsorbance)

	testutil.RequireSliceNearlyEqual(t, back, y, 1e-9)
}

func TestValues_Scenario(t *testing.T) {
	got := Values([]float64{1.0}, ModeAbsorbance, ModeTransmittance)

	testutil.RequireSliceNearlyEqual(t, got, []float64{10.0}, 1e-9)
}

func TestValues_SameModeCopies(t *testing.T) {
	y := []float64{1, 2, 3}

	out := Values(y, ModeAbsorbance, ModeAbsorbance)

	testutil.RequireSliceNearlyEqual(t, out, y, 0)

	out[0] = 99
	if y[0] == 99 {
		t.Error("same-mode conversion must not alias the input")
	}
}

func TestDetectMode_MetadataWins(t *testing.T) {
	// Absorbance-looking values, but the metadata says transmittance.
	y := []float64{0.1, 0.5, 1.0}
	meta := map[string]any{"yunits": "TRANSMITTANCE"}

	if m := DetectMode(y, "raman", meta); m != ModeTransmittance {
		t.Errorf("got %v, want transmittance from metadata", m)
	}
}

func TestDetectMode_DataTypeFallback(t *testing.T) {
	y := []float64{300, 400}
	meta := map[string]any{"data_type": "INFRARED SPECTRUM, % Transmission"}

	if m := DetectMode(y, "", meta); m != ModeTransmittance {
		t.Error("data-type field should determine the mode")
	}
}

func TestDetectMode_ValueHeuristic(t *testing.T) {
	high := []float64{85, 92, 75, 96, 88}
	if m := DetectMode(high, "raman", nil); m != ModeTransmittance {
		t.Error("high percent-range values should read as transmittance")
	}

	low := []float64{0.1, 0.8, 1.2, 0.4}
	if m := DetectMode(low, "ir", nil); m != ModeAbsorbance {
		t.Error("low values should read as absorbance despite the IR default")
	}
}

func TestDetectMode_TechniqueDefault(t *testing.T) {
	// Values that trigger neither heuristic.
	odd := []float64{300, 700, 1500}

	if m := DetectMode(odd, "IR", nil); m != ModeTransmittance {
		t.Error("IR should default to transmittance")
	}

	if m := DetectMode(odd, "raman", nil); m != ModeAbsorbance {
		t.Error("non-IR should default to absorbance")
	}
}
