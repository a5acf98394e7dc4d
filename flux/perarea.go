package flux

import (
	"math"

	"github.com/cwbudde/algo-photometry/catalog"
	"github.com/cwbudde/algo-photometry/internal/numeric"
	"github.com/cwbudde/algo-photometry/spectrum"
)

// PerArea is photon flux density per unit collecting area, photons/s/nm/m².
type PerArea struct {
	name  string
	s     spectrum.Spectrum
	valid bool
}

// NewPerArea wraps a spectrum as a named per-area flux.
func NewPerArea(name string, s spectrum.Spectrum) PerArea {
	return PerArea{name: name, s: s, valid: s.Valid()}
}

// FromCatalog reads source name from the pflux collection of l. A failed
// lookup yields an invalid flux carrying the requested name.
func FromCatalog(l catalog.Lookup, name string) PerArea {
	raw, err := l.Lookup(catalog.PFlux, name)
	if err != nil {
		return PerArea{name: name, s: spectrum.Invalid()}
	}
	return NewPerArea(name, spectrum.FromSamples(raw.Wavelengths, raw.Values))
}

// WithSpectrum returns p with its spectrum replaced. The result is valid only
// if both p and s are.
func (p PerArea) WithSpectrum(s spectrum.Spectrum) PerArea {
	return PerArea{name: p.name, s: s, valid: p.valid && s.Valid()}
}

// Name returns the source name.
func (p PerArea) Name() string { return p.name }

// Spectrum returns the flux, photons/s/nm/m².
func (p PerArea) Spectrum() spectrum.Spectrum { return p.s }

// Valid reports whether the flux is usable.
func (p PerArea) Valid() bool { return p.valid }

// Through passes p through a filter-like element.
func (p PerArea) Through(t PerAreaTransformer) PerArea {
	return t.TransformPerArea(p)
}

// ThroughAperture collects p over an aperture.
func (p PerArea) ThroughAperture(a Aperturer) Apertured {
	return a.Aperture(p)
}

// MultiplyBy scales the flux by factor.
func (p PerArea) MultiplyBy(factor float64) PerArea {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return p.WithSpectrum(spectrum.Invalid())
	}
	return p.WithSpectrum(p.s.MultiplyBy(factor))
}

// ChangeMagnitudeBy brightens (negative) or dims (positive) the flux by dmag.
func (p PerArea) ChangeMagnitudeBy(dmag float64) PerArea {
	return p.MultiplyBy(numeric.MagToRatio(dmag))
}

// FluxInPassband returns the photon flux per area seen through pb,
// photons/s/m².
func (p PerArea) FluxInPassband(pb Band) float64 {
	return p.s.Multiply(pb.Spectrum()).Integral()
}

// Magnitude returns the magnitude of p in pb's system. It is NaN when p or
// pb is invalid.
func (p PerArea) Magnitude(pb Band) float64 {
	if !p.valid || !pb.Valid() {
		return math.NaN()
	}
	return numeric.RatioToMag(p.FluxInPassband(pb) / pb.ZeroMagFlux())
}

// ColorIndex returns Magnitude(pb1) - Magnitude(pb2).
func (p PerArea) ColorIndex(pb1, pb2 Band) float64 {
	return p.Magnitude(pb1) - p.Magnitude(pb2)
}

// NormalizeToPassbandMag rescales p so that its magnitude in pb is target.
func (p PerArea) NormalizeToPassbandMag(pb Band, target float64) PerArea {
	return p.ChangeMagnitudeBy(target - p.Magnitude(pb))
}

// TotalPhotonFlux integrates the flux over the canonical grid,
// photons/s/m².
func (p PerArea) TotalPhotonFlux() float64 {
	return p.s.Integral()
}
