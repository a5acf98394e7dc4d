package optics

import (
	"math"

	"github.com/cwbudde/algo-photometry/catalog"
	"github.com/cwbudde/algo-photometry/flux"
	"github.com/cwbudde/algo-photometry/spectrum"
)

// Telescope collects light over its clear aperture and transmits it with the
// combined efficiency of its optics.
type Telescope struct {
	name        string
	s           spectrum.Spectrum
	diameter    float64
	obstruction float64
	area        float64
	valid       bool
}

// NewTelescope builds a telescope of aperture diameter m whose central
// obstruction blocks percentObstructed of the diameter. The clear area is
// π·D²/4·(1-(p/100)²). It is invalid for a non-positive diameter or an
// obstruction outside [0, 100).
func NewTelescope(name string, transmission spectrum.Spectrum, diameter, percentObstructed float64) Telescope {
	s := transmission.ClipTo(0, 1)
	obs := percentObstructed / 100
	return Telescope{
		name:        name,
		s:           s,
		diameter:    diameter,
		obstruction: percentObstructed,
		area:        math.Pi * diameter * diameter / 4 * (1 - obs*obs),
		valid:       s.Valid() && diameter > 0 && percentObstructed >= 0 && percentObstructed < 100,
	}
}

// LoadTelescope reads name from the telescope collection of l. The header
// line holds the diameter in m and the percent obstruction.
func LoadTelescope(l catalog.Lookup, name string) Telescope {
	raw, err := l.Lookup(catalog.Telescope, name)
	if err != nil {
		return Telescope{name: name, s: spectrum.Invalid()}
	}
	h, ok := headerFloats(raw, 2)
	if !ok {
		return Telescope{name: name, s: spectrum.Invalid()}
	}
	return NewTelescope(name, spectrum.FromSamples(raw.Wavelengths, raw.Values), h[0], h[1])
}

// Name returns the catalog name.
func (t Telescope) Name() string { return t.name }

// Valid reports whether transmission, diameter and obstruction are usable.
func (t Telescope) Valid() bool { return t.valid }

// Spectrum returns the clipped optical transmission.
func (t Telescope) Spectrum() spectrum.Spectrum { return t.s }

// Diameter returns the aperture diameter in m.
func (t Telescope) Diameter() float64 { return t.diameter }

// PercentObstructed returns the central obstruction in percent of the diameter.
func (t Telescope) PercentObstructed() float64 { return t.obstruction }

// ApertureArea returns the clear collecting area in m².
func (t Telescope) ApertureArea() float64 { return t.area }

// Aperture implements flux.Aperturer: the flux is collected over the clear
// area, then multiplied by the transmission. An invalid telescope yields an
// invalid result.
func (t Telescope) Aperture(p flux.PerArea) flux.Apertured {
	a := flux.Aperture(p, t.area)
	if !t.valid {
		return a.WithSpectrum(spectrum.Invalid())
	}
	return a.WithSpectrum(a.Spectrum().Multiply(t.s))
}
