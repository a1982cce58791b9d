package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/smooth"
)

var (
	flagSmoothMethod string
	flagSmoothWindow int
	flagSmoothCutoff float64
)

var smoothCmd = &cobra.Command{
	Use:   "smooth <file.csv>",
	Short: "Smooth the intensity trace",
	Long: `Smooth the spectrum's intensities before analysis. Available methods are
a centered moving average, Savitzky-Golay polynomial smoothing, and an
FFT-based low-pass filter. The smoothed spectrum is written to stdout as CSV.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readSpectrum(args[0])
		if err != nil {
			return err
		}

		var smoothed []float64

		switch flagSmoothMethod {
		case "moving-average":
			smoothed = smooth.MovingAverage(s.Y, flagSmoothWindow)
		case "savitzky-golay":
			smoothed = smooth.SavitzkyGolay(s.Y, flagSmoothWindow)
		case "lowpass":
			smoothed, err = smooth.Lowpass(s.Y, flagSmoothCutoff)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown method %q (want moving-average, savitzky-golay, or lowpass)", flagSmoothMethod)
		}

		for i := range s.X {
			fmt.Printf("%g,%g\n", s.X[i], smoothed[i])
		}

		return nil
	},
}

func init() {
	smoothCmd.Flags().StringVar(&flagSmoothMethod, "method", "savitzky-golay", "Smoothing method (moving-average, savitzky-golay, lowpass)")
	smoothCmd.Flags().IntVar(&flagSmoothWindow, "window", 9, "Window size in points for the windowed methods")
	smoothCmd.Flags().Float64Var(&flagSmoothCutoff, "cutoff", 0.2, "Normalized cutoff frequency in (0, 1] for the lowpass method")
}
