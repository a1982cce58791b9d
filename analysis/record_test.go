package analysis

import (
	"encoding/json"
	"testing"

	"github.com/cwbudde/algo-spectro/baseline"
	"github.com/cwbudde/algo-spectro/integrate"
	"github.com/cwbudde/algo-spectro/internal/testutil"
	"github.com/cwbudde/algo-spectro/peaks"
)

func TestBaselineRecordRoundTrip(t *testing.T) {
	res := baseline.Result{
		Baseline:  []float64{1, 2, 3},
		Corrected: []float64{0.5, 0, 1.5},
	}

	rec := BaselineRecord(map[string]any{"lambda": 1e5}, res, true)
	if rec.MethodName != MethodBaselineCorrection {
		t.Fatalf("method: got %s", rec.MethodName)
	}

	restored, applied, err := RestoreBaseline(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !applied {
		t.Error("applied flag lost")
	}

	testutil.RequireSliceNearlyEqual(t, restored.Baseline, res.Baseline, 0)
	testutil.RequireSliceNearlyEqual(t, restored.Corrected, res.Corrected, 0)
}

func TestBaselineRecordJSONRoundTrip(t *testing.T) {
	res := baseline.Result{
		Baseline:  []float64{1, 2, 3},
		Corrected: []float64{0.5, 0, 1.5},
	}

	rec := BaselineRecord(nil, res, false)

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored, applied, err := RestoreBaseline(decoded)
	if err != nil {
		t.Fatalf("restore after JSON round trip: %v", err)
	}

	if applied {
		t.Error("applied flag invented")
	}

	testutil.RequireSliceNearlyEqual(t, restored.Baseline, res.Baseline, 0)
	testutil.RequireSliceNearlyEqual(t, restored.Corrected, res.Corrected, 0)
}

func TestRestoreBaselineRejectsMalformedRecords(t *testing.T) {
	if _, _, err := RestoreBaseline(Record{MethodName: MethodPeakDetection}); err == nil {
		t.Error("expected error for wrong method")
	}

	rec := Record{
		MethodName: MethodBaselineCorrection,
		Results:    map[string]any{"baseline": []float64{1, 2}},
	}
	if _, _, err := RestoreBaseline(rec); err == nil {
		t.Error("expected error for missing corrected array")
	}

	rec.Results["corrected_intensities"] = []float64{1}
	if _, _, err := RestoreBaseline(rec); err == nil {
		t.Error("expected error for length mismatch")
	}
}

func TestPeaksRecordJSONRoundTrip(t *testing.T) {
	pks := []peaks.Peak{
		{ID: 3, Index: 10, X: 1250.5, Y: 0.8, Width: 4.2, Prominence: 0.6},
		{ID: 4, Index: 30, X: 1900, Y: 0.3, Width: 2, Prominence: 0.25},
	}

	recs := map[int]integrate.Record{
		3: {Area: 12.5, StartX: 1240, EndX: 1260, ManuallyAdjusted: true},
	}

	rec := PeaksRecord(map[string]any{"prominence": 0.02}, pks, recs)
	if rec.MethodName != MethodPeakDetection {
		t.Fatalf("method: got %s", rec.MethodName)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restoredPeaks, restoredRecs, err := RestorePeaks(decoded)
	if err != nil {
		t.Fatalf("restore after JSON round trip: %v", err)
	}

	if len(restoredPeaks) != len(pks) {
		t.Fatalf("got %d peaks, want %d", len(restoredPeaks), len(pks))
	}

	for i, pk := range restoredPeaks {
		want := pks[i]

		if pk.ID != want.ID || pk.Index != want.Index {
			t.Errorf("peak %d: got ID %d index %d, want ID %d index %d", i, pk.ID, pk.Index, want.ID, want.Index)
		}

		testutil.RequireNearlyEqual(t, pk.X, want.X, 1e-12)
		testutil.RequireNearlyEqual(t, pk.Y, want.Y, 1e-12)
		testutil.RequireNearlyEqual(t, pk.Width, want.Width, 1e-12)
		testutil.RequireNearlyEqual(t, pk.Prominence, want.Prominence, 1e-12)
	}

	if len(restoredRecs) != 1 {
		t.Fatalf("got %d integration records, want 1", len(restoredRecs))
	}

	got := restoredRecs[3]
	if !got.ManuallyAdjusted {
		t.Error("manual flag lost")
	}

	testutil.RequireNearlyEqual(t, got.Area, 12.5, 1e-12)
	testutil.RequireNearlyEqual(t, got.StartX, 1240, 1e-12)
	testutil.RequireNearlyEqual(t, got.EndX, 1260, 1e-12)
}

func TestRestorePeaksRejectsMissingIDs(t *testing.T) {
	rec := Record{
		MethodName: MethodPeakDetection,
		Results: map[string]any{
			"peaks": []any{map[string]any{"position": 1.0}},
		},
	}

	if _, _, err := RestorePeaks(rec); err == nil {
		t.Error("expected error for peak entry without id")
	}
}

func TestRestorePeaksEmptyRecord(t *testing.T) {
	rec := PeaksRecord(nil, nil, nil)

	pks, recs, err := RestorePeaks(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pks) != 0 || len(recs) != 0 {
		t.Errorf("got %d peaks and %d records, want none", len(pks), len(recs))
	}
}
