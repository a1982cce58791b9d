package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/cwbudde/algo-spectro/analysis"
)

// readSpectrum loads a two-column CSV file into a working spectrum. A single
// non-numeric first row is treated as a header.
func readSpectrum(path string) (*analysis.Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read spectrum: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read spectrum %s: %w", path, err)
	}

	var x, y []float64

	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("read spectrum %s: line %d: expected x,y columns", path, i+1)
		}

		xv, errX := strconv.ParseFloat(row[0], 64)
		yv, errY := strconv.ParseFloat(row[1], 64)

		if errX != nil || errY != nil {
			if i == 0 {
				// Header row.
				continue
			}

			return nil, fmt.Errorf("read spectrum %s: line %d: non-numeric data", path, i+1)
		}

		x = append(x, xv)
		y = append(y, yv)
	}

	if len(x) == 0 {
		return nil, fmt.Errorf("read spectrum %s: no data points", path)
	}

	return analysis.NewSpectrum(0, x, y, flagTechnique, flagXUnit, nil), nil
}
