package flux

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-photometry/spectrum"
)

// Physical constants, SI units.
const (
	Planck    = 6.62606957e-34 // J·s
	Light     = 299792458.0    // m/s
	Boltzmann = 1.3806488e-23  // J/K

	// stellarSolidAngle is the nominal solid angle of the synthetic source, sr.
	stellarSolidAngle = 1.84e-17
)

// Blackbody validity ranges.
const (
	MinBlackbodyTemp = 500.0
	MaxBlackbodyTemp = 60000.0
	MinBlackbodyMag  = -10.0
	MaxBlackbodyMag  = 30.0
)

// occupation returns the Bose-Einstein photon occupation number
// 1/(exp(hc/λkT)-1) at wavelength nm and temperature tempK.
func occupation(nm, tempK float64) float64 {
	lambda := nm * 1e-9
	return 1 / math.Expm1(Planck*Light/(lambda*Boltzmann*tempK))
}

func temperatureInRange(tempK float64) bool {
	return tempK >= MinBlackbodyTemp && tempK <= MaxBlackbodyTemp
}

func magnitudeInRange(mag float64) bool {
	return mag >= MinBlackbodyMag && mag <= MaxBlackbodyMag
}

// Blackbody synthesizes the photon flux of a blackbody at tempK scaled so that
// its magnitude in pb equals targetMag. The result is invalid for a
// temperature outside [500, 60000] K, a magnitude outside [-10, 30] or an
// invalid passband.
func Blackbody(tempK float64, pb Band, targetMag float64) PerArea {
	name := fmt.Sprintf("Blackbody %gK", tempK)
	if !temperatureInRange(tempK) || !magnitudeInRange(targetMag) || !pb.Valid() {
		return PerArea{name: name, s: spectrum.Invalid()}
	}

	width := spectrum.Increment * 1e-9
	y := make([]float64, spectrum.NPoints)
	for i := range y {
		nm := spectrum.X(i)
		lambda := nm * 1e-9
		y[i] = width * (2 * Light / math.Pow(lambda, 4)) * occupation(nm, tempK) * stellarSolidAngle
	}

	raw := spectrum.FromGrid(y)
	inBand := raw.Multiply(pb.Spectrum()).Integral()
	factor := pb.ZeroMagFlux() * math.Pow(10, -targetMag/2.5) / inBand
	if inBand <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return PerArea{name: name, s: spectrum.Invalid()}
	}
	return NewPerArea(name, raw.MultiplyBy(factor))
}

// ChangeBBTemp reshapes p as if its source temperature changed from
// beforeK to afterK, then renormalizes it to targetMag in pb. Both
// temperatures must lie in the blackbody range.
func (p PerArea) ChangeBBTemp(beforeK, afterK float64, pb Band, targetMag float64) PerArea {
	if !temperatureInRange(beforeK) || !temperatureInRange(afterK) {
		return p.WithSpectrum(spectrum.Invalid())
	}

	ratio := make([]float64, spectrum.NPoints)
	for i := range ratio {
		nm := spectrum.X(i)
		ratio[i] = occupation(nm, afterK) / occupation(nm, beforeK)
	}
	reshaped := p.WithSpectrum(p.s.Multiply(spectrum.FromGrid(ratio)))
	return reshaped.NormalizeToPassbandMag(pb, targetMag)
}
