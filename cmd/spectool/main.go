// Command spectool runs the spectral analysis engine against two-column CSV
// spectra from the command line.
//
// Examples:
//
//	spectool peaks spectrum.csv
//	spectool peaks -prominence 0.05 -csv spectrum.csv
//	spectool baseline -method als -lambda 1e6 spectrum.csv
//	spectool convert -to-unit cm-1 spectrum.csv
//	spectool integrate spectrum.csv
//	spectool smooth -method lowpass -cutoff 0.3 spectrum.csv
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagTechnique string
	flagXUnit     string
)

var rootCmd = &cobra.Command{
	Use:   "spectool",
	Short: "Spectral analysis toolbox",
	Long: `spectool applies the algo-spectro analysis engine to spectra stored as
two-column CSV files (x,y per line, optional header).

Available stages: baseline correction, peak detection, peak integration,
smoothing, and unit/mode conversion. The technique, when not given, is inferred from
the x-axis range.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTechnique, "technique", "", "Spectroscopic technique (ir, raman, uv-vis, libs); inferred when empty")
	rootCmd.PersistentFlags().StringVar(&flagXUnit, "x-unit", "", "Unit of the x axis (nm, um, cm-1)")

	rootCmd.AddCommand(peaksCmd)
	rootCmd.AddCommand(baselineCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(integrateCmd)
	rootCmd.AddCommand(smoothCmd)
}
