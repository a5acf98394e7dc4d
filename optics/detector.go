package optics

import (
	"math"

	"github.com/cwbudde/algo-photometry/catalog"
	"github.com/cwbudde/algo-photometry/flux"
	"github.com/cwbudde/algo-photometry/spectrum"
)

// Detector converts photons to counts with a wavelength-dependent quantum
// efficiency.
type Detector struct {
	name  string
	qe    spectrum.Spectrum
	valid bool
}

// NewDetector builds a detector from its quantum efficiency, clipped to [0, 1].
func NewDetector(name string, qe spectrum.Spectrum) Detector {
	s := qe.ClipTo(0, 1)
	return Detector{name: name, qe: s, valid: s.Valid()}
}

// LoadDetector reads name from the detector collection of l.
func LoadDetector(l catalog.Lookup, name string) Detector {
	raw, err := l.Lookup(catalog.Detector, name)
	if err != nil {
		return Detector{name: name, qe: spectrum.Invalid()}
	}
	return NewDetector(name, spectrum.FromSamples(raw.Wavelengths, raw.Values))
}

// Name returns the catalog name.
func (d Detector) Name() string { return d.name }

// Valid reports whether the QE curve is usable.
func (d Detector) Valid() bool { return d.valid }

// QE returns the quantum efficiency, clipped to [0, 1].
func (d Detector) QE() spectrum.Spectrum { return d.qe }

// PeakQE returns the largest quantum efficiency.
func (d Detector) PeakQE() float64 { return d.qe.Max() }

// CountRate implements flux.Detector: the integral of flux times QE,
// counts/s.
func (d Detector) CountRate(a flux.Apertured) float64 {
	return a.Spectrum().Multiply(d.qe).Integral()
}

// InstrumentalMagnitude implements flux.Detector: -2.5*log10(CountRate).
func (d Detector) InstrumentalMagnitude(a flux.Apertured) float64 {
	return -2.5 * math.Log10(d.CountRate(a))
}
