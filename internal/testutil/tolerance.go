package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t if got and want differ by more than eps. NaN never
// passes.
func RequireNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > eps {
		t.Fatalf("%s: got %v, want %v (eps %v)", name, got, want, eps)
	}
}

// RequireAllNear fails t if any sample of data is farther than eps from want.
func RequireAllNear(t *testing.T, name string, data []float64, want, eps float64) {
	t.Helper()
	if i, d := MaxDeviation(data, want); d > eps {
		t.Fatalf("%s: sample %d = %v, want %v (eps %v)", name, i, data[i], want, eps)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxDeviation returns the index and size of the largest |data[i]-want|.
// A NaN sample counts as an infinite deviation. It returns (-1, 0) for
// empty data.
func MaxDeviation(data []float64, want float64) (int, float64) {
	idx, maxDev := -1, 0.0
	for i, v := range data {
		d := math.Abs(v - want)
		if math.IsNaN(d) {
			d = math.Inf(1)
		}
		if idx < 0 || d > maxDev {
			idx, maxDev = i, d
		}
	}
	return idx, maxDev
}
