package analysis

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/baseline"
	"github.com/cwbudde/algo-spectro/integrate"
	"github.com/cwbudde/algo-spectro/peaks"
)

// Method names used in persisted records.
const (
	MethodBaselineCorrection = "baseline_correction"
	MethodPeakDetection      = "peak_detection"
)

// Record is the persistence payload for one analysis method applied to a
// spectrum. The persistence collaborator stores it keyed by spectrum ID and
// method name and treats the contents as opaque.
type Record struct {
	MethodName string         `json:"method_name"`
	Parameters map[string]any `json:"parameters"`
	Results    map[string]any `json:"results"`
}

// BaselineRecord serializes a baseline result. applied marks the correction
// as active, meaning the working spectrum was replaced with the corrected
// trace.
func BaselineRecord(params map[string]any, r baseline.Result, applied bool) Record {
	bl := make([]float64, len(r.Baseline))
	copy(bl, r.Baseline)

	corrected := make([]float64, len(r.Corrected))
	copy(corrected, r.Corrected)

	return Record{
		MethodName: MethodBaselineCorrection,
		Parameters: params,
		Results: map[string]any{
			"applied":               applied,
			"baseline":              bl,
			"corrected_intensities": corrected,
		},
	}
}

// PeaksRecord serializes detected peaks together with their integration
// records so a reload can reconstruct both without recomputation.
func PeaksRecord(params map[string]any, pks []peaks.Peak, recs map[int]integrate.Record) Record {
	serialized := make([]any, 0, len(pks))
	integrated := make([]any, 0, len(recs))

	for _, pk := range pks {
		entry := map[string]any{
			"id":         pk.ID,
			"index":      pk.Index,
			"position":   pk.X,
			"intensity":  pk.Y,
			"width":      pk.Width,
			"prominence": pk.Prominence,
		}
		serialized = append(serialized, entry)

		rec, ok := recs[pk.ID]
		if !ok {
			continue
		}

		integrated = append(integrated, map[string]any{
			"id":                pk.ID,
			"integration_area":  rec.Area,
			"integration_start": rec.StartX,
			"integration_end":   rec.EndX,
			"manually_adjusted": rec.ManuallyAdjusted,
		})
	}

	return Record{
		MethodName: MethodPeakDetection,
		Parameters: params,
		Results: map[string]any{
			"peaks":            serialized,
			"integrated_peaks": integrated,
		},
	}
}

// RestoreBaseline reconstructs a baseline result from a persisted record and
// reports whether the correction was applied to the working spectrum.
func RestoreBaseline(rec Record) (baseline.Result, bool, error) {
	if rec.MethodName != MethodBaselineCorrection {
		return baseline.Result{}, false, fmt.Errorf("restore baseline: unexpected method %q", rec.MethodName)
	}

	bl, err := floatSlice(rec.Results["baseline"])
	if err != nil {
		return baseline.Result{}, false, fmt.Errorf("restore baseline: baseline array: %w", err)
	}

	corrected, err := floatSlice(rec.Results["corrected_intensities"])
	if err != nil {
		return baseline.Result{}, false, fmt.Errorf("restore baseline: corrected array: %w", err)
	}

	if len(bl) != len(corrected) {
		return baseline.Result{}, false, fmt.Errorf("restore baseline: array length mismatch: %d != %d", len(bl), len(corrected))
	}

	applied, _ := rec.Results["applied"].(bool)

	return baseline.Result{Baseline: bl, Corrected: corrected}, applied, nil
}

// RestorePeaks reconstructs the peak list and integration records from a
// persisted record.
func RestorePeaks(rec Record) ([]peaks.Peak, map[int]integrate.Record, error) {
	if rec.MethodName != MethodPeakDetection {
		return nil, nil, fmt.Errorf("restore peaks: unexpected method %q", rec.MethodName)
	}

	rawPeaks, err := entrySlice(rec.Results["peaks"])
	if err != nil {
		return nil, nil, fmt.Errorf("restore peaks: peaks array: %w", err)
	}

	pks := make([]peaks.Peak, 0, len(rawPeaks))

	for i, entry := range rawPeaks {
		pk := peaks.Peak{
			ID:        intField(entry, "id"),
			Index:     intField(entry, "index"),
			LeftBase:  -1,
			RightBase: -1,
		}

		if pk.ID == 0 {
			return nil, nil, fmt.Errorf("restore peaks: entry %d missing id", i)
		}

		pk.X = floatField(entry, "position")
		pk.Y = floatField(entry, "intensity")
		pk.Width = floatField(entry, "width")
		pk.Prominence = floatField(entry, "prominence")

		pks = append(pks, pk)
	}

	rawIntegrated, err := entrySlice(rec.Results["integrated_peaks"])
	if err != nil {
		return nil, nil, fmt.Errorf("restore peaks: integrated array: %w", err)
	}

	recs := make(map[int]integrate.Record, len(rawIntegrated))

	for i, entry := range rawIntegrated {
		id := intField(entry, "id")
		if id == 0 {
			return nil, nil, fmt.Errorf("restore peaks: integrated entry %d missing id", i)
		}

		adjusted, _ := entry["manually_adjusted"].(bool)

		recs[id] = integrate.Record{
			Area:             floatField(entry, "integration_area"),
			StartX:           floatField(entry, "integration_start"),
			EndX:             floatField(entry, "integration_end"),
			ManuallyAdjusted: adjusted,
		}
	}

	return pks, recs, nil
}

// floatSlice accepts both native []float64 values and the []any form produced
// by a JSON round trip.
func floatSlice(v any) ([]float64, error) {
	switch t := v.(type) {
	case []float64:
		out := make([]float64, len(t))
		copy(out, t)

		return out, nil
	case []any:
		out := make([]float64, len(t))

		for i, e := range t {
			f, ok := toFloat(e)
			if !ok {
				return nil, fmt.Errorf("element %d is not a number: %T", i, e)
			}

			out[i] = f
		}

		return out, nil
	case nil:
		return nil, fmt.Errorf("missing array")
	default:
		return nil, fmt.Errorf("unsupported array type %T", v)
	}
}

func entrySlice(v any) ([]map[string]any, error) {
	switch t := v.(type) {
	case []any:
		out := make([]map[string]any, 0, len(t))

		for i, e := range t {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("element %d is not an object: %T", i, e)
			}

			out = append(out, m)
		}

		return out, nil
	case []map[string]any:
		return t, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported array type %T", v)
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

func floatField(entry map[string]any, key string) float64 {
	f, _ := toFloat(entry[key])
	return f
}

func intField(entry map[string]any, key string) int {
	f, ok := toFloat(entry[key])
	if !ok {
		return 0
	}

	return int(f)
}
