package spectrum

import (
	"math"

	"github.com/cwbudde/algo-photometry/interp"
)

// Canonical grid.
const (
	NmLow     = 300.0
	Increment = 0.1
	NPoints   = 10001
	NmHigh    = NmLow + (NPoints-1)*Increment
)

// zeros backs every invalid spectrum. It is never written.
var zeros = make([]float64, NPoints)

// Spectrum is an immutable function of wavelength on the canonical grid.
// The zero value is an invalid spectrum.
type Spectrum struct {
	y     []float64
	valid bool
}

// FromEven resamples ys, taken to be evenly spaced from nmLow to nmHigh
// inclusive, onto the canonical grid. The result is invalid if nmHigh does not
// exceed nmLow or fewer than four values are given.
func FromEven(nmLow, nmHigh float64, ys []float64) Spectrum {
	if !(nmHigh > nmLow) || len(ys) < interp.MinPoints {
		return Invalid()
	}
	return FromTable(interp.NaturalCubic, interp.EvenGrid(nmLow, nmHigh, len(ys)), ys)
}

// FromSamples resamples arbitrarily spaced (nm, ys) pairs onto the canonical
// grid with a natural cubic spline. Pairs need not be sorted. The result is
// invalid for mismatched lengths, fewer than four points or duplicate
// wavelengths.
func FromSamples(nm, ys []float64) Spectrum {
	return FromTable(interp.NaturalCubic, nm, ys)
}

// FromTable is FromSamples with an explicit interpolation method.
func FromTable(m interp.Method, nm, ys []float64) Spectrum {
	if len(nm) != len(ys) || len(nm) < interp.MinPoints {
		return Invalid()
	}
	sx, sy, err := interp.SortPairs(nm, ys)
	if err != nil {
		return Invalid()
	}
	y, err := interp.Resample(m, sx, sy, NmLow, Increment, NPoints)
	if err != nil {
		return Invalid()
	}
	return Spectrum{y: y, valid: true}
}

// FromGrid copies values already sampled on the canonical grid.
// The result is invalid unless len(ys) == NPoints.
func FromGrid(ys []float64) Spectrum {
	if len(ys) != NPoints {
		return Invalid()
	}
	y := make([]float64, NPoints)
	copy(y, ys)
	return Spectrum{y: y, valid: true}
}

// Constant returns a valid spectrum with every sample equal to v.
func Constant(v float64) Spectrum {
	y := make([]float64, NPoints)
	for i := range y {
		y[i] = v
	}
	return Spectrum{y: y, valid: true}
}

// Zero returns an all-zero spectrum carrying only the given validity flag.
func Zero(valid bool) Spectrum {
	if !valid {
		return Invalid()
	}
	return Spectrum{y: make([]float64, NPoints), valid: true}
}

// Invalid returns the all-zero invalid marker.
func Invalid() Spectrum {
	return Spectrum{y: zeros}
}

// Valid reports whether the spectrum was constructed successfully.
func (s Spectrum) Valid() bool { return s.valid }

// Len returns the number of samples, always NPoints.
func (s Spectrum) Len() int { return NPoints }

// X returns the wavelength in nm of sample i.
func X(i int) float64 { return NmLow + float64(i)*Increment }

// X returns the wavelength in nm of sample i.
func (s Spectrum) X(i int) float64 { return X(i) }

// Y returns sample i.
func (s Spectrum) Y(i int) float64 { return s.data()[i] }

// Values returns a copy of the samples.
func (s Spectrum) Values() []float64 {
	out := make([]float64, NPoints)
	copy(out, s.data())
	return out
}

// Wavelengths returns the canonical grid in nm.
func Wavelengths() []float64 {
	nm := make([]float64, NPoints)
	for i := range nm {
		nm[i] = X(i)
	}
	return nm
}

// Min returns the smallest sample.
func (s Spectrum) Min() float64 {
	y := s.data()
	m := math.Inf(1)
	for _, v := range y {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest sample.
func (s Spectrum) Max() float64 {
	y := s.data()
	m := math.Inf(-1)
	for _, v := range y {
		if v > m {
			m = v
		}
	}
	return m
}

// Clone returns a deep copy backed by a new array.
func (s Spectrum) Clone() Spectrum {
	if !s.valid {
		return Invalid()
	}
	return FromGrid(s.y)
}

func (s Spectrum) data() []float64 {
	if s.y == nil {
		return zeros
	}
	return s.y
}
