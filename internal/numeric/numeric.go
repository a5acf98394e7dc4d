// Package numeric holds small scalar helpers shared by the photometry packages.
package numeric

import "math"

// MagToRatio converts a magnitude difference to a flux ratio (Pogson, 2.5*log10).
func MagToRatio(mag float64) float64 {
	return math.Pow(10, -mag/2.5)
}

// RatioToMag converts a flux ratio to a magnitude difference.
// Returns +Inf for zero and NaN for negative values.
func RatioToMag(ratio float64) float64 {
	if ratio < 0 {
		return math.NaN()
	}

	if ratio == 0 {
		return math.Inf(1)
	}

	return -2.5 * math.Log10(ratio)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Secant returns 1/cos of an angle given in degrees.
func Secant(deg float64) float64 {
	return 1 / math.Cos(Radians(deg))
}
