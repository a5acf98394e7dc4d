package pipeline

import (
	"math"

	"github.com/cwbudde/algo-photometry/atmosphere"
)

// Option configures CountsVector.
type Option func(*config)

type config struct {
	zeroAllOnInvalidPath bool
}

// WithZeroAllOnInvalidAirPath makes a single invalid air path zero every
// entry of the result, instead of only its own.
func WithZeroAllOnInvalidAirPath() Option {
	return func(c *config) { c.zeroAllOnInvalidPath = true }
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// CountsVector returns the counts collected in an exposure of seconds through
// each air path. The result has one entry per path. It is all zero if the
// chain is invalid or seconds is negative; an invalid path zeros its own
// entry, or all of them with WithZeroAllOnInvalidAirPath.
func CountsVector(c Chain, paths []atmosphere.AirPath, seconds float64, opts ...Option) []float64 {
	cfg := applyOptions(opts)
	counts := make([]float64, len(paths))
	if !c.Valid() || !(seconds >= 0) {
		return counts
	}
	if cfg.zeroAllOnInvalidPath {
		for _, p := range paths {
			if !p.Valid() {
				return counts
			}
		}
	}
	for i, p := range paths {
		if !p.Valid() {
			continue
		}
		counts[i] = c.CountRate(p) * seconds
	}
	return counts
}

// ExoCounts returns the counts of one exposure with no atmosphere.
func ExoCounts(c Chain, seconds float64) float64 {
	if !(seconds >= 0) {
		return 0
	}
	return c.CountRate(nil) * seconds
}

// InstrumentalMagnitudes converts counts of an exposure of seconds to
// -2.5*log10(counts/seconds). Non-positive entries give NaN.
func InstrumentalMagnitudes(counts []float64, seconds float64) []float64 {
	out := make([]float64, len(counts))
	for i, n := range counts {
		if !(n > 0) || !(seconds > 0) {
			out[i] = math.NaN()
			continue
		}
		out[i] = -2.5 * math.Log10(n/seconds)
	}
	return out
}
