package flux

import "github.com/cwbudde/algo-photometry/spectrum"

// Apertured is photon flux through an aperture of known area, photons/s/nm.
// It is derived only: see Aperture and Apertured.WithSpectrum.
type Apertured struct {
	name  string
	s     spectrum.Spectrum
	area  float64
	valid bool
}

// Aperture collects p over area m². A negative area yields an invalid
// result whose spectrum is still p's spectrum scaled by area.
func Aperture(p PerArea, area float64) Apertured {
	s := p.s.MultiplyBy(area)
	return Apertured{
		name:  p.name,
		s:     s,
		area:  area,
		valid: p.valid && s.Valid() && area >= 0,
	}
}

// WithSpectrum returns a with its spectrum replaced, keeping name and area.
func (a Apertured) WithSpectrum(s spectrum.Spectrum) Apertured {
	return Apertured{
		name:  a.name,
		s:     s,
		area:  a.area,
		valid: a.valid && s.Valid() && a.area >= 0,
	}
}

// Name returns the source name.
func (a Apertured) Name() string { return a.name }

// Spectrum returns the flux, photons/s/nm.
func (a Apertured) Spectrum() spectrum.Spectrum { return a.s }

// ApertureArea returns the collecting area in m².
func (a Apertured) ApertureArea() float64 { return a.area }

// Valid reports whether the flux and its area are usable.
func (a Apertured) Valid() bool { return a.valid }

// Through passes a through a filter-like element.
func (a Apertured) Through(t AperturedTransformer) Apertured {
	return t.TransformApertured(a)
}

// TotalPhotonFlux integrates the flux, photons/s.
func (a Apertured) TotalPhotonFlux() float64 {
	return a.s.Integral()
}

// CountRate returns the detector's count rate for a, counts/s.
func (a Apertured) CountRate(d Detector) float64 {
	return d.CountRate(a)
}

// InstrumentalMagnitude returns -2.5*log10 of the count rate on d.
func (a Apertured) InstrumentalMagnitude(d Detector) float64 {
	return d.InstrumentalMagnitude(a)
}
