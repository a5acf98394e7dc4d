package interp

import (
	"errors"
	"fmt"
	"sort"

	gonuminterp "gonum.org/v1/gonum/interp"
)

// MinPoints is the smallest table Resample accepts.
const MinPoints = 4

var (
	ErrTooFewPoints   = errors.New("interp: too few points")
	ErrLengthMismatch = errors.New("interp: xs and ys must have same length")
	ErrNotIncreasing  = errors.New("interp: xs must be strictly increasing")
	ErrInvalidGrid    = errors.New("interp: grid step and size must be positive")
)

// Method selects the interpolating curve used by Resample.
type Method int

const (
	NaturalCubic Method = iota
	Akima
	Linear
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case NaturalCubic:
		return "natural-cubic"
	case Akima:
		return "akima"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

func (m Method) predictor() (gonuminterp.FittablePredictor, error) {
	switch m {
	case NaturalCubic:
		return &gonuminterp.NaturalCubic{}, nil
	case Akima:
		return &gonuminterp.AkimaSpline{}, nil
	case Linear:
		return &gonuminterp.PiecewiseLinear{}, nil
	default:
		return nil, fmt.Errorf("interp: unknown method %d", int(m))
	}
}

// Resample fits (xs, ys) and evaluates the fit at x0 + i*step for i in [0, n).
// xs must be strictly increasing. Grid points left of xs[0] or right of
// xs[len(xs)-1] are clamped to the corresponding endpoint value.
func Resample(m Method, xs, ys []float64, x0, step float64, n int) ([]float64, error) {
	if err := validate(xs, ys); err != nil {
		return nil, err
	}
	if step <= 0 || n <= 0 {
		return nil, ErrInvalidGrid
	}

	p, err := m.predictor()
	if err != nil {
		return nil, err
	}
	if err := p.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("interp: %s fit: %w", m, err)
	}

	first, last := xs[0], xs[len(xs)-1]
	out := make([]float64, n)
	for i := range out {
		x := x0 + float64(i)*step
		switch {
		case x < first:
			out[i] = ys[0]
		case x > last:
			out[i] = ys[len(ys)-1]
		default:
			out[i] = p.Predict(x)
		}
	}
	return out, nil
}

// EvenGrid returns n abscissae evenly spaced from low to high inclusive.
func EvenGrid(low, high float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = low
		return xs
	}
	step := (high - low) / float64(n-1)
	for i := range xs {
		xs[i] = low + float64(i)*step
	}
	return xs
}

// SortPairs returns copies of xs and ys reordered by ascending x.
// The inputs are not modified.
func SortPairs(xs, ys []float64) ([]float64, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, ErrLengthMismatch
	}
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	sx := make([]float64, len(xs))
	sy := make([]float64, len(ys))
	for i, j := range idx {
		sx[i] = xs[j]
		sy[i] = ys[j]
	}
	return sx, sy, nil
}

func validate(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	if len(xs) < MinPoints {
		return fmt.Errorf("%w: got %d, need %d", ErrTooFewPoints, len(xs), MinPoints)
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return fmt.Errorf("%w: x[%d]=%v after x[%d]=%v", ErrNotIncreasing, i, xs[i], i-1, xs[i-1])
		}
	}
	return nil
}
