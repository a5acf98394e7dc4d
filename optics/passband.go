package optics

import (
	"github.com/cwbudde/algo-photometry/catalog"
	"github.com/cwbudde/algo-photometry/flux"
	"github.com/cwbudde/algo-photometry/spectrum"
)

// Passband is a reference band of a magnitude system. ZeroMagFlux is the
// photon flux per area, photons/s/m², of a magnitude-zero source in the band.
type Passband struct {
	name        string
	s           spectrum.Spectrum
	zeroMagFlux float64
	valid       bool
}

// NewPassband builds a passband from its transmission, clipped to [0, 1].
// It is invalid unless zeroMagFlux > 0.
func NewPassband(name string, transmission spectrum.Spectrum, zeroMagFlux float64) Passband {
	s := transmission.ClipTo(0, 1)
	return Passband{
		name:        name,
		s:           s,
		zeroMagFlux: zeroMagFlux,
		valid:       s.Valid() && zeroMagFlux > 0,
	}
}

// LoadPassband reads name from the passband collection of l. The first token
// of the header line is the zero-magnitude flux.
func LoadPassband(l catalog.Lookup, name string) Passband {
	raw, err := l.Lookup(catalog.Passband, name)
	if err != nil {
		return Passband{name: name, s: spectrum.Invalid()}
	}
	h, ok := headerFloats(raw, 1)
	if !ok {
		return Passband{name: name, s: spectrum.Invalid()}
	}
	return NewPassband(name, spectrum.FromSamples(raw.Wavelengths, raw.Values), h[0])
}

// Name returns the catalog name.
func (p Passband) Name() string { return p.name }

// Valid reports whether the response and zero point are usable.
func (p Passband) Valid() bool { return p.valid }

// Spectrum returns the response.
func (p Passband) Spectrum() spectrum.Spectrum { return p.s }

// ZeroMagFlux returns the in-band photon flux of a zero-magnitude source, photons/s/m².
func (p Passband) ZeroMagFlux() float64 { return p.zeroMagFlux }

// TransformPerArea implements flux.PerAreaTransformer.
func (p Passband) TransformPerArea(f flux.PerArea) flux.PerArea {
	if !p.valid {
		return f.WithSpectrum(spectrum.Invalid())
	}
	return f.WithSpectrum(f.Spectrum().Multiply(p.s))
}

// TransformApertured implements flux.AperturedTransformer.
func (p Passband) TransformApertured(a flux.Apertured) flux.Apertured {
	if !p.valid {
		return a.WithSpectrum(spectrum.Invalid())
	}
	return a.WithSpectrum(a.Spectrum().Multiply(p.s))
}
