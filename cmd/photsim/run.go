package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-photometry/atmosphere"
	"github.com/cwbudde/algo-photometry/atmosphere/smarts"
	"github.com/cwbudde/algo-photometry/catalog"
	"github.com/cwbudde/algo-photometry/flux"
	"github.com/cwbudde/algo-photometry/internal/config"
	"github.com/cwbudde/algo-photometry/internal/export"
	"github.com/cwbudde/algo-photometry/internal/logger"
	"github.com/cwbudde/algo-photometry/optics"
	"github.com/cwbudde/algo-photometry/pipeline"
)

func runCmd() *cobra.Command {
	var (
		configPath  string
		metricsAddr string
		parquetPath string
		zeroAll     bool
	)

	c := &cobra.Command{
		Use:   "run",
		Short: "Observe a star through an airmass series and fit the extinction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.L()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				stop, err := serveMetrics(metricsAddr, log)
				if err != nil {
					return fmt.Errorf("metrics: %w", err)
				}
				defer stop()
			}

			ro := runOptions{parquetPath: parquetPath}
			if zeroAll {
				ro.pipeline = append(ro.pipeline, pipeline.WithZeroAllOnInvalidAirPath())
			}
			return runObservation(cmd.Context(), cfg, log, cmd.OutOrStdout(), ro)
		},
	}

	c.Flags().StringVarP(&configPath, "config", "c", "", "observation file (required)")
	c.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	c.Flags().StringVar(&parquetPath, "parquet", "", "also write the airmass series to this Parquet file")
	c.Flags().BoolVar(&zeroAll, "zero-all", false, "zero every count when any air path is invalid")
	_ = c.MarkFlagRequired("config")
	return c
}

type runOptions struct {
	parquetPath string
	pipeline    []pipeline.Option
}

func runObservation(ctx context.Context, cfg config.Config, log *slog.Logger, w io.Writer, ro runOptions) error {
	cat := catalog.NewDir(cfg.Catalog, catalog.WithLogger(log))
	obs := cfg.Observation

	chain := buildChain(cat, obs)
	if !chain.Valid() {
		return fmt.Errorf("invalid optical chain: %s", describeChain(chain))
	}

	atm := buildAtmosphere(cat, cfg, log)
	if !atm.Valid() {
		return fmt.Errorf("invalid atmosphere for site %q", obs.Site)
	}
	log.Info("observing",
		"star", obs.Star,
		"site", atm.Site().Name,
		"exposure_s", obs.ExposureSeconds,
		"airmasses", len(obs.Airmasses),
	)

	series := pipeline.AirmassSeries(ctx, chain, atm, obs.Airmasses, obs.ExposureSeconds, ro.pipeline...)
	if err := printSeries(w, series); err != nil {
		return err
	}
	if ro.parquetPath != "" {
		rows := export.Rows(obs.Star, atm.Site().Name, obs.ExposureSeconds, series)
		if err := writeParquet(ro.parquetPath, rows); err != nil {
			return err
		}
		log.Info("wrote series", "path", ro.parquetPath, "rows", len(rows))
	}

	exo := pipeline.ExoCounts(chain, obs.ExposureSeconds)
	if _, err := fmt.Fprintf(w, "\nAbove atmosphere: %.6g counts\n", exo); err != nil {
		return err
	}

	m0, k, err := pipeline.FitExtinction(series)
	if err != nil {
		log.Debug("extinction fit skipped", "error", err)
		return nil
	}
	_, err = fmt.Fprintf(w, "Extinction fit: m0=%.4f k=%.4f mag/airmass\n", m0, k)
	return err
}

func buildChain(cat catalog.Lookup, obs config.Observation) pipeline.Chain {
	c := pipeline.Chain{
		Star:      flux.FromCatalog(cat, obs.Star),
		Telescope: optics.LoadTelescope(cat, obs.Telescope),
		Detector:  optics.LoadDetector(cat, obs.Detector),
	}
	if obs.Reflector != "" {
		c.Reflector = optics.LoadFilter(cat, obs.Reflector)
	}
	if obs.FrontFilter.Name != "" {
		c.FrontFilter = loadFilter(cat, obs.FrontFilter)
	}
	if obs.RearFilter.Name != "" {
		c.RearFilter = loadFilter(cat, obs.RearFilter)
	}
	return c
}

func loadFilter(cat catalog.Lookup, f config.Filter) optics.Filter {
	return optics.LoadFilter(cat, f.Name,
		optics.WithThickness(f.Thickness),
		optics.WithCoverage(f.Coverage),
	)
}

func buildAtmosphere(cat catalog.RecordSource, cfg config.Config, log *slog.Logger) *atmosphere.Atmosphere {
	if cfg.Observation.Site == "" {
		return atmosphere.Exo(atmosphere.WithLogger(log))
	}
	provider := smarts.New(cfg.Smarts.Dir,
		smarts.WithExecutable(cfg.Smarts.Executable),
		smarts.WithTimeout(cfg.Smarts.Timeout),
		smarts.WithCO2(cfg.Smarts.CO2),
		smarts.WithLogger(log),
	)
	return atmosphere.Load(cat, cfg.Observation.Site, provider, atmosphere.WithLogger(log))
}

func describeChain(c pipeline.Chain) string {
	switch {
	case !c.Star.Valid():
		return "star spectrum"
	case c.Telescope == nil || !c.Telescope.Valid():
		return "telescope"
	case c.Detector == nil || !c.Detector.Valid():
		return "detector"
	case c.Reflector != nil && !c.Reflector.Valid():
		return "reflector"
	case c.FrontFilter != nil && !c.FrontFilter.Valid():
		return "front filter"
	default:
		return "rear filter"
	}
}

func printSeries(w io.Writer, series []pipeline.Observation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Airmass\tZenith [deg]\tCounts\tInst Mag\tValid\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-------\t------------\t------\t--------\t-----\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, o := range series {
		mag := "-"
		if !math.IsNaN(o.InstrumentalMagnitude) {
			mag = fmt.Sprintf("%.4f", o.InstrumentalMagnitude)
		}
		if _, err := fmt.Fprintf(tw, "%.3f\t%.3f\t%.6g\t%s\t%t\n",
			o.Airmass,
			o.ZenithDeg,
			o.Counts,
			mag,
			o.Valid,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

func writeParquet(path string, rows []export.SeriesRow) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return export.WriteSeries(f, rows)
}
