package analysis

import (
	"strings"
	"testing"

	"github.com/cwbudde/algo-spectro/integrate"
	"github.com/cwbudde/algo-spectro/peaks"
)

func TestWriteCSV(t *testing.T) {
	pks := []peaks.Peak{
		{ID: 1, X: 1250.5, Y: 0.8, Width: 4.25, Prominence: 0.6},
		{ID: 2, X: 1900, Y: 0.3, Width: 2, Prominence: 0.25},
	}

	recs := map[int]integrate.Record{
		1: {Area: 12.5, StartX: 1240, EndX: 1260, ManuallyAdjusted: true},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, pks, recs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	wantHeader := "Position,Intensity,Width,Prominence,Integration Area,Integration Start,Integration End,Manually Adjusted"
	if lines[0] != wantHeader {
		t.Errorf("header:\ngot  %s\nwant %s", lines[0], wantHeader)
	}

	wantFirst := "1250.5000,0.8000,4.2500,0.6000,12.5000,1240.0000,1260.0000,true"
	if lines[1] != wantFirst {
		t.Errorf("integrated row:\ngot  %s\nwant %s", lines[1], wantFirst)
	}

	wantSecond := "1900.0000,0.3000,2.0000,0.2500,,,,"
	if lines[2] != wantSecond {
		t.Errorf("unintegrated row:\ngot  %s\nwant %s", lines[2], wantSecond)
	}
}

func TestWriteCSVNoPeaks(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.TrimSpace(sb.String()) != strings.Join(csvHeader, ",") {
		t.Errorf("got %q, want header only", sb.String())
	}
}
