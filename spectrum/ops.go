package spectrum

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ClipToMinOf returns a copy with every sample raised to at least floor.
func (s Spectrum) ClipToMinOf(floor float64) Spectrum {
	if !s.valid {
		return Invalid()
	}
	y := make([]float64, NPoints)
	for i, v := range s.y {
		y[i] = math.Max(v, floor)
	}
	return Spectrum{y: y, valid: true}
}

// ClipToMaxOf returns a copy with every sample lowered to at most ceiling.
func (s Spectrum) ClipToMaxOf(ceiling float64) Spectrum {
	if !s.valid {
		return Invalid()
	}
	y := make([]float64, NPoints)
	for i, v := range s.y {
		y[i] = math.Min(v, ceiling)
	}
	return Spectrum{y: y, valid: true}
}

// ClipTo bounds every sample to [low, high].
func (s Spectrum) ClipTo(low, high float64) Spectrum {
	return s.ClipToMinOf(low).ClipToMaxOf(high)
}

// MultiplyBy scales every sample by k.
func (s Spectrum) MultiplyBy(k float64) Spectrum {
	if !s.valid {
		return Invalid()
	}
	y := make([]float64, NPoints)
	vecmath.ScaleBlock(y, s.y, k)
	return Spectrum{y: y, valid: true}
}

// Multiply returns the point-wise product s*o.
func (s Spectrum) Multiply(o Spectrum) Spectrum {
	if !s.valid || !o.valid {
		return Invalid()
	}
	y := make([]float64, NPoints)
	vecmath.MulBlock(y, s.y, o.y)
	return Spectrum{y: y, valid: true}
}

// Add returns the point-wise sum s+o.
func (s Spectrum) Add(o Spectrum) Spectrum {
	if !s.valid || !o.valid {
		return Invalid()
	}
	y := make([]float64, NPoints)
	vecmath.AddBlock(y, s.y, o.y)
	return Spectrum{y: y, valid: true}
}

// Map applies f to every sample.
func (s Spectrum) Map(f func(float64) float64) Spectrum {
	if !s.valid {
		return Invalid()
	}
	y := make([]float64, NPoints)
	for i, v := range s.y {
		y[i] = f(v)
	}
	return Spectrum{y: y, valid: true}
}

// Sum returns the plain sum of all samples.
func (s Spectrum) Sum() float64 {
	return vecmath.Sum(s.data())
}

// Integral integrates over wavelength with the trapezoidal rule:
// (sum(y) - (y[0]+y[last])/2) * Increment.
func (s Spectrum) Integral() float64 {
	y := s.data()
	return (vecmath.Sum(y) - (y[0]+y[NPoints-1])/2) * Increment
}
