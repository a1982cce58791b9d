package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-spectro/integrate"
	"github.com/cwbudde/algo-spectro/peaks"
)

var csvHeader = []string{
	"Position",
	"Intensity",
	"Width",
	"Prominence",
	"Integration Area",
	"Integration Start",
	"Integration End",
	"Manually Adjusted",
}

// WriteCSV exports peak records as CSV.
//
// Numeric fields are formatted to 4 decimal places and peaks without an
// integration record leave the integration columns empty. Quoting follows
// RFC 4180 via encoding/csv.
func WriteCSV(w io.Writer, pks []peaks.Peak, recs map[int]integrate.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv export: header: %w", err)
	}

	for _, pk := range pks {
		row := []string{
			formatNum(pk.X),
			formatNum(pk.Y),
			formatNum(pk.Width),
			formatNum(pk.Prominence),
			"", "", "", "",
		}

		if rec, ok := recs[pk.ID]; ok {
			row[4] = formatNum(rec.Area)
			row[5] = formatNum(rec.StartX)
			row[6] = formatNum(rec.EndX)
			row[7] = strconv.FormatBool(rec.ManuallyAdjusted)
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv export: peak %d: %w", pk.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv export: flush: %w", err)
	}

	return nil
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
