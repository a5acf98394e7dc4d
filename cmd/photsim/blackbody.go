package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-photometry/catalog"
	"github.com/cwbudde/algo-photometry/flux"
	"github.com/cwbudde/algo-photometry/optics"
)

func blackbodyCmd() *cobra.Command {
	var (
		catalogDir string
		passbands  []string
		mag        float64
	)

	c := &cobra.Command{
		Use:   "blackbody <temperature-K> ...",
		Short: "Print passband magnitudes of blackbodies normalized in the first passband",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(passbands) == 0 {
				return errors.New("at least one --passband is required")
			}
			cat := catalog.NewDir(catalogDir)
			bands := make([]optics.Passband, len(passbands))
			for i, name := range passbands {
				bands[i] = optics.LoadPassband(cat, name)
				if !bands[i].Valid() {
					return fmt.Errorf("passband %q is invalid or missing", name)
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			header := []string{"Temp [K]"}
			for _, b := range bands {
				header = append(header, b.Name())
			}
			header = append(header, "Photons [1/s/m2]")
			if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			dashes := make([]string, len(header))
			for i, h := range header {
				dashes[i] = strings.Repeat("-", len(h))
			}
			if _, err := fmt.Fprintln(tw, strings.Join(dashes, "\t")); err != nil {
				return fmt.Errorf("write header: %w", err)
			}

			for _, a := range args {
				t, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("temperature %q: %w", a, err)
				}
				bb := flux.Blackbody(t, bands[0], mag)
				if !bb.Valid() {
					return fmt.Errorf("no valid blackbody at %g K", t)
				}
				row := []string{strconv.FormatFloat(t, 'g', -1, 64)}
				for _, b := range bands {
					row = append(row, fmt.Sprintf("%.4f", bb.Magnitude(b)))
				}
				row = append(row, fmt.Sprintf("%.6g", bb.TotalPhotonFlux()))
				if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
					return fmt.Errorf("write row: %w", err)
				}
			}
			return tw.Flush()
		},
	}

	c.Flags().StringVar(&catalogDir, "catalog", ".", "catalog directory")
	c.Flags().StringArrayVarP(&passbands, "passband", "p", nil, "passband name; repeat for more, the first one normalizes")
	c.Flags().Float64VarP(&mag, "mag", "m", 0, "magnitude in the first passband")
	return c
}
