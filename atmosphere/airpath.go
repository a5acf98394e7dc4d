package atmosphere

import (
	"github.com/cwbudde/algo-photometry/flux"
	"github.com/cwbudde/algo-photometry/spectrum"
)

// AirPath is the transmission of the air towards one zenith angle. It
// carries a copy of the site and weather it was computed for, so later
// changes to the parent Atmosphere do not affect it.
type AirPath struct {
	site    Site
	weather Weather
	zenith  float64
	s       spectrum.Spectrum
	valid   bool
}

// Valid reports whether the transmission could be computed.
func (p AirPath) Valid() bool { return p.valid }

// Site returns the site the path was made for.
func (p AirPath) Site() Site { return p.site }

// Weather returns the weather at the time the path was made.
func (p AirPath) Weather() Weather { return p.weather }

// SiteName returns the site name.
func (p AirPath) SiteName() string { return p.site.Name }

// Spectrum returns the transmission.
func (p AirPath) Spectrum() spectrum.Spectrum { return p.s }

// ZenithAngle returns the requested zenith angle in degrees, sign and all.
func (p AirPath) ZenithAngle() float64 { return p.zenith }

// Y returns transmission sample i.
func (p AirPath) Y(i int) float64 { return p.s.Y(i) }

// TransformPerArea implements flux.PerAreaTransformer.
func (p AirPath) TransformPerArea(f flux.PerArea) flux.PerArea {
	if !p.valid {
		return f.WithSpectrum(spectrum.Invalid())
	}
	return f.WithSpectrum(f.Spectrum().Multiply(p.s))
}
