package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-photometry/atmosphere"
	"github.com/cwbudde/algo-photometry/catalog"
	"github.com/cwbudde/algo-photometry/internal/config"
	"github.com/cwbudde/algo-photometry/internal/logger"
	"github.com/cwbudde/algo-photometry/spectrum"
)

// index550nm is the grid index of 550 nm.
const index550nm = 2500

func airpathCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
	)

	c := &cobra.Command{
		Use:   "airpath <zenith-deg> ...",
		Short: "Compute air path transmissions and store them as catalog filters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.L()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			zs := make([]float64, len(args))
			for i, a := range args {
				if zs[i], err = strconv.ParseFloat(a, 64); err != nil {
					return fmt.Errorf("zenith angle %q: %w", a, err)
				}
			}

			atm := buildAtmosphere(catalog.NewDir(cfg.Catalog, catalog.WithLogger(log)), cfg, log)
			if !atm.Valid() {
				return fmt.Errorf("invalid atmosphere for site %q", cfg.Observation.Site)
			}
			paths := atm.MakeAirPaths(cmd.Context(), zs)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "Zenith [deg]\tValid\tT(550 nm)\tFile\n"); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			if _, err := fmt.Fprintf(tw, "------------\t-----\t---------\t----\n"); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			for _, p := range paths {
				file := "-"
				if p.Valid() && outDir != "" {
					file = filepath.Join(outDir, catalog.Filter, fmt.Sprintf("airpath_z%07.3f.txt.gz", p.ZenithAngle()))
					if err := catalog.WriteFile(file, airPathRaw(p)); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintf(tw, "%.3f\t%t\t%.6f\t%s\n", p.ZenithAngle(), p.Valid(), p.Y(index550nm), file); err != nil {
					return fmt.Errorf("write row: %w", err)
				}
			}
			return tw.Flush()
		},
	}

	c.Flags().StringVarP(&configPath, "config", "c", "", "observation file (required)")
	c.Flags().StringVarP(&outDir, "out", "o", "", "catalog root to write valid transmissions into")
	_ = c.MarkFlagRequired("config")
	return c
}

// airPathName is the catalog key an air path is stored under.
func airPathName(p atmosphere.AirPath) string {
	return fmt.Sprintf("Airpath %s z=%g", p.SiteName(), p.ZenithAngle())
}

func airPathRaw(p atmosphere.AirPath) catalog.Raw {
	return catalog.Raw{
		Name:        airPathName(p),
		Wavelengths: spectrum.Wavelengths(),
		Values:      p.Spectrum().Values(),
	}
}
