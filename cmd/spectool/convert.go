package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/convert"
)

var (
	flagToUnit string
	flagToMode string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.csv>",
	Short: "Convert x-axis units or intensity mode",
	Long: `Convert the spectrum's x axis between wavelength units (nm, um, cm-1)
and/or the intensity axis between absorbance and transmittance. The converted
spectrum is written to stdout as CSV.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readSpectrum(args[0])
		if err != nil {
			return err
		}

		if flagToUnit != "" {
			res := s.ConvertUnits(flagToUnit)
			fmt.Fprintf(os.Stderr, "%s\n", res.Note)
		}

		if flagToMode != "" {
			to := convert.DataMode(flagToMode)
			if to != convert.ModeAbsorbance && to != convert.ModeTransmittance {
				return fmt.Errorf("unknown mode %q (want absorbance or transmittance)", flagToMode)
			}

			s.ConvertMode(to, nil, nil)
			fmt.Fprintf(os.Stderr, "converted intensities to %s\n", to)
		}

		for i := range s.X {
			fmt.Printf("%g,%g\n", s.X[i], s.Y[i])
		}

		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&flagToUnit, "to-unit", "", "Target x-axis unit (nm, um, cm-1); technique default when detecting")
	convertCmd.Flags().StringVar(&flagToMode, "to-mode", "", "Target intensity mode (absorbance, transmittance)")
}
