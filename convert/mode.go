package convert

import (
	"math"
	"strings"
)

// DataMode identifies how intensity values are expressed.
type DataMode string

// Supported intensity modes.
const (
	ModeAbsorbance    DataMode = "absorbance"
	ModeTransmittance DataMode = "transmittance"
)

// Clamp domains keep degenerate data from producing infinities or NaNs.
const (
	maxAbsorbance      = 10
	minTransmittance   = 0.01
	maxTransmittance   = 100
	clampMinAbsorbance = 0
)

// AbsorbanceToTransmittance converts a single absorbance value to percent
// transmittance: %T = 100 * 10^(-A). The input is clamped to [0, 10].
func AbsorbanceToTransmittance(a float64) float64 {
	a = clamp(a, clampMinAbsorbance, maxAbsorbance)
	return math.Pow(10, -a) * 100
}

// TransmittanceToAbsorbance converts a single percent-transmittance value to
// absorbance: A = -log10(T/100). The input is clamped to [0.01, 100].
func TransmittanceToAbsorbance(t float64) float64 {
	t = clamp(t, minTransmittance, maxTransmittance)
	return -math.Log10(t / 100)
}

// Values converts a whole intensity trace between modes. Converting a trace to
// its current mode returns a plain copy. Applying the same conversion to
// baseline points and detected-peak intensities keeps derived artifacts
// consistent with the display mode.
func Values(y []float64, from, to DataMode) []float64 {
	if len(y) == 0 {
		return nil
	}

	out := make([]float64, len(y))

	switch {
	case from == ModeAbsorbance && to == ModeTransmittance:
		for i, v := range y {
			out[i] = AbsorbanceToTransmittance(v)
		}
	case from == ModeTransmittance && to == ModeAbsorbance:
		for i, v := range y {
			out[i] = TransmittanceToAbsorbance(v)
		}
	default:
		copy(out, y)
	}

	return out
}

// transmittanceWords and absorbanceWords are the vocabularies matched against
// metadata unit strings.
var (
	transmittanceWords = []string{"transmittance", "transmission", "%t", "percent t"}
	absorbanceWords    = []string{"absorbance", "absorption", "optical density", "abs"}
)

// metadataModeKeys are checked in priority order: explicit y-unit fields
// first, then data-type fields.
var (
	yUnitKeys    = []string{"yunits", "y_units", "yunit", "y_unit"}
	dataTypeKeys = []string{"data_type", "datatype", "data type"}
)

// DetectMode determines whether y holds absorbance or transmittance values.
//
// Priority order: an explicit y-units metadata field, a metadata data-type
// field, a value-range heuristic, and finally a technique-based default
// (IR spectra default to transmittance, everything else to absorbance).
func DetectMode(y []float64, technique string, metadata map[string]any) DataMode {
	if m, ok := modeFromMetadata(metadata, yUnitKeys); ok {
		return m
	}

	if m, ok := modeFromMetadata(metadata, dataTypeKeys); ok {
		return m
	}

	if m, ok := modeFromValues(y); ok {
		return m
	}

	switch strings.ToLower(strings.TrimSpace(technique)) {
	case "ir", "infrared":
		return ModeTransmittance
	default:
		return ModeAbsorbance
	}
}

func modeFromMetadata(metadata map[string]any, keys []string) (DataMode, bool) {
	for _, key := range keys {
		value := metadataString(metadata, key)
		if value == "" {
			continue
		}

		lower := strings.ToLower(value)

		for _, w := range transmittanceWords {
			if strings.Contains(lower, w) {
				return ModeTransmittance, true
			}
		}

		for _, w := range absorbanceWords {
			if strings.Contains(lower, w) {
				return ModeAbsorbance, true
			}
		}
	}

	return "", false
}

// metadataString looks up key case-insensitively and returns its string value.
func metadataString(metadata map[string]any, key string) string {
	for k, v := range metadata {
		if !strings.EqualFold(k, key) {
			continue
		}

		if s, ok := v.(string); ok {
			return s
		}
	}

	return ""
}

// modeFromValues applies the value-range heuristic: values mostly in [0, 100]
// with mean above 50 look like percent transmittance; values mostly in [0, 5]
// with mean below 2 look like absorbance.
func modeFromValues(y []float64) (DataMode, bool) {
	if len(y) == 0 {
		return "", false
	}

	var (
		sum         float64
		inPercent   int
		inAbsRange  int
		finiteCount int
	)

	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		finiteCount++
		sum += v

		if v >= 0 && v <= 100 {
			inPercent++
		}

		if v >= 0 && v <= 5 {
			inAbsRange++
		}
	}

	if finiteCount == 0 {
		return "", false
	}

	mean := sum / float64(finiteCount)
	mostly := int(0.9 * float64(finiteCount))

	if inPercent >= mostly && mean > 50 {
		return ModeTransmittance, true
	}

	if inAbsRange >= mostly && mean < 2 {
		return ModeAbsorbance, true
	}

	return "", false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
