// Package export writes simulation results to columnar files.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/cwbudde/algo-photometry/pipeline"
)

// SeriesRow is one airmass-series observation as stored in Parquet.
type SeriesRow struct {
	Star                  string  `parquet:"star"`
	Site                  string  `parquet:"site"`
	ExposureSeconds       float64 `parquet:"exposure_seconds"`
	Airmass               float64 `parquet:"airmass"`
	ZenithDeg             float64 `parquet:"zenith_deg"`
	Counts                float64 `parquet:"counts"`
	InstrumentalMagnitude float64 `parquet:"instrumental_magnitude"`
	Valid                 bool    `parquet:"valid"`
}

// Rows labels obs with the star, site and exposure they were taken with.
func Rows(star, site string, seconds float64, obs []pipeline.Observation) []SeriesRow {
	rows := make([]SeriesRow, len(obs))
	for i, o := range obs {
		rows[i] = SeriesRow{
			Star:                  star,
			Site:                  site,
			ExposureSeconds:       seconds,
			Airmass:               o.Airmass,
			ZenithDeg:             o.ZenithDeg,
			Counts:                o.Counts,
			InstrumentalMagnitude: o.InstrumentalMagnitude,
			Valid:                 o.Valid,
		}
	}
	return rows
}

// WriteSeries writes rows as a single Parquet file to w.
func WriteSeries(w io.Writer, rows []SeriesRow) error {
	pw := parquet.NewGenericWriter[SeriesRow](w)
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		return fmt.Errorf("export: write rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("export: close writer: %w", err)
	}
	return nil
}

// ReadSeries reads every row of a Parquet file written by WriteSeries.
func ReadSeries(r io.ReaderAt, size int64) ([]SeriesRow, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("export: open: %w", err)
	}

	reader := parquet.NewGenericReader[SeriesRow](pf)
	defer reader.Close()

	rows := make([]SeriesRow, pf.NumRows())
	n, err := reader.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("export: read rows: %w", err)
	}
	return rows[:n], nil
}
