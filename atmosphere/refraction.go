package atmosphere

import (
	"math"

	"github.com/cwbudde/algo-photometry/internal/numeric"
)

// StationPressure returns the mean pressure in millibars at elevation m,
// from a 7996 m scale height.
func StationPressure(elevationM float64) float64 {
	return 1013.25 * math.Exp(-elevationM/7996)
}

// Refraction returns the atmospheric refraction in degrees for a geometric
// zenith angle, following the Astronomical Almanac (2009, B8). Accuracy is
// about 0.1 arcminute below 75°; a low-altitude formula is used beyond.
func Refraction(geometricZenithDeg, airTempC, elevationM float64) float64 {
	p := StationPressure(elevationM)
	kelvin := 273.15 + airTempC
	if geometricZenithDeg < 75 {
		return 0.00452 * p * math.Tan(numeric.Radians(geometricZenithDeg)) / kelvin
	}
	a := 90 - geometricZenithDeg
	return p * (0.1594 + 0.0196*a + 0.00002*a*a) / (kelvin * (1 + 0.505*a + 0.0845*a*a))
}

// ApparentZenithAngle lifts a geometric zenith angle by fraction of the
// refraction. A fraction of 1 gives the full Almanac correction.
func ApparentZenithAngle(geometricZenithDeg, airTempC, elevationM, fraction float64) float64 {
	return geometricZenithDeg - fraction*Refraction(geometricZenithDeg, airTempC, elevationM)
}

// ZenithAngleForAirmass returns the zenith angle in degrees of a plane
// parallel airmass X = sec z. It is NaN for X < 1.
func ZenithAngleForAirmass(x float64) float64 {
	if !(x >= 1) {
		return math.NaN()
	}
	return numeric.Degrees(math.Acos(1 / x))
}
