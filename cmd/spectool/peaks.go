package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/analysis"
	"github.com/cwbudde/algo-spectro/integrate"
	"github.com/cwbudde/algo-spectro/peaks"
)

var (
	flagProminence float64
	flagDistance   int
	flagMinWidth   float64
	flagValley     bool
	flagCSVOut     bool
)

var peaksCmd = &cobra.Command{
	Use:   "peaks <file.csv>",
	Short: "Detect peaks in a spectrum",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readSpectrum(args[0])
		if err != nil {
			return err
		}

		found := s.DetectPeaks(peaks.Params{
			Prominence: flagProminence,
			Distance:   flagDistance,
			Width:      flagMinWidth,
			Valley:     flagValley,
		})

		if flagCSVOut {
			return analysis.WriteCSV(os.Stdout, found, nil)
		}

		printPeaks(s, found, nil)

		return nil
	},
}

var integrateCmd = &cobra.Command{
	Use:   "integrate <file.csv>",
	Short: "Detect and integrate peaks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readSpectrum(args[0])
		if err != nil {
			return err
		}

		found := s.DetectPeaks(peaks.Params{
			Prominence: flagProminence,
			Distance:   flagDistance,
			Width:      flagMinWidth,
			Valley:     flagValley,
		})

		recs := s.IntegratePeaks(found, nil, integrate.Options{})

		if flagCSVOut {
			return analysis.WriteCSV(os.Stdout, found, recs)
		}

		printPeaks(s, found, recs)

		return nil
	},
}

func printPeaks(s *analysis.Spectrum, found []peaks.Peak, recs map[int]integrate.Record) {
	fmt.Printf("%d peaks (technique %s, mode %s, %d points)\n\n", len(found), s.Technique, s.Mode, s.Len())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	if recs == nil {
		fmt.Fprintln(w, "ID\tPosition\tIntensity\tProminence\tWidth")
		for _, pk := range found {
			fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%.2f\n", pk.ID, pk.X, pk.Y, pk.Prominence, pk.Width)
		}

		return
	}

	fmt.Fprintln(w, "ID\tPosition\tIntensity\tProminence\tArea\tStart\tEnd")
	for _, pk := range found {
		rec := recs[pk.ID]
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			pk.ID, pk.X, pk.Y, pk.Prominence, rec.Area, rec.StartX, rec.EndX)
	}
}

func init() {
	for _, c := range []*cobra.Command{peaksCmd, integrateCmd} {
		c.Flags().Float64Var(&flagProminence, "prominence", 0.02, "Minimum prominence as a fraction of the intensity range")
		c.Flags().IntVar(&flagDistance, "distance", 5, "Minimum index separation between peaks")
		c.Flags().Float64Var(&flagMinWidth, "min-width", 0, "Minimum half-height width in points (0 disables)")
		c.Flags().BoolVar(&flagValley, "valley", false, "Search for valleys instead of peaks")
		c.Flags().BoolVar(&flagCSVOut, "csv", false, "Write results as CSV to stdout")
	}
}
