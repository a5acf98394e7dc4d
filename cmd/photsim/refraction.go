package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-photometry/atmosphere"
	"github.com/cwbudde/algo-photometry/internal/numeric"
)

func refractionCmd() *cobra.Command {
	var (
		tempC     float64
		elevation float64
		fraction  float64
	)

	c := &cobra.Command{
		Use:   "refraction <zenith-deg> ...",
		Short: "Print apparent zenith angles and airmasses for geometric zenith angles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zs := make([]float64, len(args))
			for i, a := range args {
				z, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("zenith angle %q: %w", a, err)
				}
				zs[i] = z
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "Zenith [deg]\tRefraction [deg]\tApparent [deg]\tAirmass\n"); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			if _, err := fmt.Fprintf(tw, "------------\t----------------\t--------------\t-------\n"); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			for _, z := range zs {
				apparent := atmosphere.ApparentZenithAngle(z, tempC, elevation, fraction)
				if _, err := fmt.Fprintf(tw, "%.3f\t%.6f\t%.6f\t%.4f\n",
					z,
					atmosphere.Refraction(z, tempC, elevation),
					apparent,
					numeric.Secant(apparent),
				); err != nil {
					return fmt.Errorf("write row: %w", err)
				}
			}
			return tw.Flush()
		},
	}

	c.Flags().Float64VarP(&tempC, "temp", "t", 10, "air temperature in °C")
	c.Flags().Float64VarP(&elevation, "elevation", "e", 0, "site elevation in metres")
	c.Flags().Float64Var(&fraction, "fraction", atmosphere.DefaultConfig().RefractionFraction, "fraction of the refraction applied")
	return c
}
