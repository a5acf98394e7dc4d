package testutil

import "math"

// Table samples f at n evenly spaced wavelengths from low to high nm.
func Table(low, high float64, n int, f func(nm float64) float64) (nm, y []float64) {
	nm = make([]float64, n)
	y = make([]float64, n)
	step := (high - low) / float64(n-1)
	for i := range nm {
		nm[i] = low + float64(i)*step
		y[i] = f(nm[i])
	}
	return nm, y
}

// Gaussian returns a bell curve with the given peak, center and FWHM in nm.
func Gaussian(peak, center, fwhm float64) func(float64) float64 {
	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))
	return func(nm float64) float64 {
		d := (nm - center) / sigma
		return peak * math.Exp(-0.5*d*d)
	}
}

// Flat returns a constant function.
func Flat(v float64) func(float64) float64 {
	return func(float64) float64 { return v }
}

// Ramp returns a linear function of wavelength through (x0, y0) with the given slope per nm.
func Ramp(x0, y0, slope float64) func(float64) float64 {
	return func(nm float64) float64 { return y0 + slope*(nm-x0) }
}
