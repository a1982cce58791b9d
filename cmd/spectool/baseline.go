package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/analysis"
	"github.com/cwbudde/algo-spectro/baseline"
)

var (
	flagMethod  string
	flagLambda  float64
	flagAsym    float64
	flagMaxIter int
	flagDegree  int
	flagApply   bool
)

var baselineCmd = &cobra.Command{
	Use:   "baseline <file.csv>",
	Short: "Estimate and subtract a baseline",
	Long: `Estimate a baseline with one of the supported methods and print a summary.
With --apply the corrected spectrum is written to stdout as CSV.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readSpectrum(args[0])
		if err != nil {
			return err
		}

		params := analysis.BaselineParams{
			ALS: baseline.ALSParams{
				Lambda:        flagLambda,
				Asymmetry:     flagAsym,
				MaxIterations: flagMaxIter,
			},
			Degree: flagDegree,
		}

		result := s.CorrectBaseline(analysis.BaselineMethod(flagMethod), params)
		if len(result.Baseline) == 0 {
			return fmt.Errorf("baseline estimation produced no result for %d points", s.Len())
		}

		if flagApply {
			s.AdoptCorrected(result)

			for i := range s.X {
				fmt.Printf("%g,%g\n", s.X[i], s.Y[i])
			}

			return nil
		}

		printBaselineSummary(s, result)

		return nil
	},
}

func printBaselineSummary(s *analysis.Spectrum, r baseline.Result) {
	minB, maxB := r.Baseline[0], r.Baseline[0]
	maxC := r.Corrected[0]

	for i := range r.Baseline {
		if r.Baseline[i] < minB {
			minB = r.Baseline[i]
		}

		if r.Baseline[i] > maxB {
			maxB = r.Baseline[i]
		}

		if r.Corrected[i] > maxC {
			maxC = r.Corrected[i]
		}
	}

	rng := baseline.RecommendedLambda(s.Technique)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Points\t%d\n", s.Len())
	fmt.Fprintf(w, "Technique\t%s\n", s.Technique)
	fmt.Fprintf(w, "Baseline range\t%.4f .. %.4f\n", minB, maxB)
	fmt.Fprintf(w, "Corrected max\t%.4f\n", maxC)
	fmt.Fprintf(w, "Recommended lambda\t%.0e .. %.0e (default %.0e)\n", rng.Min, rng.Max, rng.Default)
}

func init() {
	baselineCmd.Flags().StringVar(&flagMethod, "method", "auto", "Baseline method: als, als-fast, auto, polynomial, linear")
	baselineCmd.Flags().Float64Var(&flagLambda, "lambda", 0, "ALS smoothness penalty (0 uses the default)")
	baselineCmd.Flags().Float64Var(&flagAsym, "asymmetry", 0, "ALS asymmetry in (0,1) (0 uses the default)")
	baselineCmd.Flags().IntVar(&flagMaxIter, "max-iter", 0, "Maximum ALS iterations (0 uses the default)")
	baselineCmd.Flags().IntVar(&flagDegree, "degree", 1, "Polynomial method degree")
	baselineCmd.Flags().BoolVar(&flagApply, "apply", false, "Write the corrected spectrum as CSV to stdout")
}
