package optics

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-photometry/catalog"
	"github.com/cwbudde/algo-photometry/flux"
	"github.com/cwbudde/algo-photometry/spectrum"
)

// Filter is a transmissive element, optionally thicker or thinner than its
// reference and covering only part of the beam.
type Filter struct {
	name      string
	input     spectrum.Spectrum
	effective spectrum.Spectrum
	thickness float64
	coverage  float64
	valid     bool
}

// FilterOption configures a Filter.
type FilterOption func(*filterConfig)

type filterConfig struct {
	thickness float64
	coverage  float64
}

// WithThickness sets the thickness relative to the tabulated filter. It must
// be non-negative.
func WithThickness(t float64) FilterOption {
	return func(c *filterConfig) { c.thickness = t }
}

// WithCoverage sets the fraction of the beam covered by the filter, in [0, 1].
func WithCoverage(f float64) FilterOption {
	return func(c *filterConfig) { c.coverage = f }
}

func applyFilterOptions(opts []FilterOption) filterConfig {
	cfg := filterConfig{thickness: 1, coverage: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// NewFilter builds a filter from a transmission spectrum. Transmission is
// clipped to [0, 1]; the effective transmission is
// (1-coverage) + coverage*T^thickness.
func NewFilter(name string, transmission spectrum.Spectrum, opts ...FilterOption) Filter {
	cfg := applyFilterOptions(opts)
	f := Filter{name: name, thickness: cfg.thickness, coverage: cfg.coverage}
	if cfg.thickness < 0 || cfg.coverage < 0 || cfg.coverage > 1 {
		f.input, f.effective = spectrum.Invalid(), spectrum.Invalid()
		return f
	}

	f.input = transmission.ClipTo(0, 1)
	if cfg.thickness == 1 && cfg.coverage == 1 {
		f.effective = f.input
	} else {
		f.effective = f.input.Map(func(t float64) float64 {
			return (1 - cfg.coverage) + cfg.coverage*math.Pow(t, cfg.thickness)
		})
	}
	f.valid = f.effective.Valid()
	return f
}

// LoadFilter reads name from the filter collection of l.
func LoadFilter(l catalog.Lookup, name string, opts ...FilterOption) Filter {
	raw, err := l.Lookup(catalog.Filter, name)
	if err != nil {
		return NewFilter(name, spectrum.Invalid(), opts...)
	}
	return NewFilter(name, spectrum.FromSamples(raw.Wavelengths, raw.Values), opts...)
}

// NoFilter transmits everything.
func NoFilter() Filter {
	return NeutralDensity(1)
}

// NeutralDensity transmits fraction t at every wavelength. The filter is
// invalid unless t lies in [0, 1].
func NeutralDensity(t float64) Filter {
	if t < 0 || t > 1 {
		return Filter{
			name:      fmt.Sprintf("Transmission invalid (%g)", t),
			input:     spectrum.Invalid(),
			effective: spectrum.Invalid(),
			thickness: 1,
			coverage:  1,
		}
	}
	return NewFilter(fmt.Sprintf("Transmission=%g", t), spectrum.Constant(t))
}

// Name returns the catalog name.
func (f Filter) Name() string { return f.name }

// Valid reports whether the transmission and options are usable.
func (f Filter) Valid() bool { return f.valid }

// Thickness returns the thickness relative to the tabulated filter.
func (f Filter) Thickness() float64 { return f.thickness }

// Coverage returns the covered fraction of the beam.
func (f Filter) Coverage() float64 { return f.coverage }

// Input returns the clipped tabulated transmission.
func (f Filter) Input() spectrum.Spectrum { return f.input }

// Spectrum returns the effective transmission.
func (f Filter) Spectrum() spectrum.Spectrum { return f.effective }

// TransformPerArea implements flux.PerAreaTransformer.
func (f Filter) TransformPerArea(p flux.PerArea) flux.PerArea {
	return p.WithSpectrum(p.Spectrum().Multiply(f.effective))
}

// TransformApertured implements flux.AperturedTransformer.
func (f Filter) TransformApertured(a flux.Apertured) flux.Apertured {
	return a.WithSpectrum(a.Spectrum().Multiply(f.effective))
}
