package pipeline

import (
	"context"
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-photometry/atmosphere"
)

// ErrTooFewObservations is returned by FitExtinction for fewer than two
// usable observations.
var ErrTooFewObservations = errors.New("pipeline: too few observations")

// Observation is one exposure of an airmass series.
type Observation struct {
	Airmass               float64
	ZenithDeg             float64
	Counts                float64
	InstrumentalMagnitude float64 // NaN when Counts is zero
	Valid                 bool
}

// AirmassSeries observes the chain through atm at each airmass X = sec z.
// Airmasses below 1 give invalid, zero-count observations.
func AirmassSeries(ctx context.Context, c Chain, atm *atmosphere.Atmosphere, airmasses []float64, seconds float64, opts ...Option) []Observation {
	zenith := make([]float64, len(airmasses))
	for i, x := range airmasses {
		zenith[i] = atmosphere.ZenithAngleForAirmass(x)
	}
	paths := atm.MakeAirPaths(ctx, zenith)
	counts := CountsVector(c, paths, seconds, opts...)
	mags := InstrumentalMagnitudes(counts, seconds)

	out := make([]Observation, len(airmasses))
	for i := range out {
		out[i] = Observation{
			Airmass:               airmasses[i],
			ZenithDeg:             zenith[i],
			Counts:                counts[i],
			InstrumentalMagnitude: mags[i],
			Valid:                 paths[i].Valid() && counts[i] > 0,
		}
	}
	return out
}

// FitExtinction fits m = m0 + k·X to the valid observations by least
// squares and returns the magnitude above the atmosphere m0 and the
// first-order extinction coefficient k in mag per airmass.
func FitExtinction(obs []Observation) (m0, k float64, err error) {
	var xs, ys []float64
	for _, o := range obs {
		if o.Valid && !math.IsNaN(o.InstrumentalMagnitude) {
			xs = append(xs, o.Airmass)
			ys = append(ys, o.InstrumentalMagnitude)
		}
	}
	if len(xs) < 2 {
		return 0, 0, ErrTooFewObservations
	}
	m0, k = stat.LinearRegression(xs, ys, nil, false)
	return m0, k, nil
}
