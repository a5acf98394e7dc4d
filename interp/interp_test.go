package interp

import (
	"errors"
	"math"
	"testing"
)

func TestResampleLinearRampIsExact(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 3, 5, 7, 9}

	for _, m := range []Method{NaturalCubic, Akima, Linear} {
		t.Run(m.String(), func(t *testing.T) {
			got, err := Resample(m, xs, ys, 0, 0.25, 17)
			if err != nil {
				t.Fatalf("Resample error: %v", err)
			}
			for i, v := range got {
				want := 1 + 2*0.25*float64(i)
				if diff := v - want; diff < -1e-9 || diff > 1e-9 {
					t.Fatalf("i=%d: got %v want %v", i, v, want)
				}
			}
		})
	}
}

func TestResampleClampsOutsideTable(t *testing.T) {
	xs := []float64{10, 11, 12, 13}
	ys := []float64{2, 4, 3, 5}

	got, err := Resample(NaturalCubic, xs, ys, 8, 1, 8)
	if err != nil {
		t.Fatalf("Resample error: %v", err)
	}
	if got[0] != 2 || got[1] != 2 {
		t.Fatalf("left clamp: got %v, %v want 2", got[0], got[1])
	}
	if got[6] != 5 || got[7] != 5 {
		t.Fatalf("right clamp: got %v, %v want 5", got[6], got[7])
	}
	// knots are reproduced exactly
	if math.Abs(got[3]-4) > 1e-12 || math.Abs(got[4]-3) > 1e-12 {
		t.Fatalf("knots not reproduced: %v", got[2:6])
	}
}

func TestResampleErrors(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
		want error
	}{
		{name: "too few", xs: []float64{0, 1, 2}, ys: []float64{0, 1, 2}, want: ErrTooFewPoints},
		{name: "mismatch", xs: []float64{0, 1, 2, 3}, ys: []float64{0, 1, 2}, want: ErrLengthMismatch},
		{name: "duplicate", xs: []float64{0, 1, 1, 3}, ys: []float64{0, 1, 2, 3}, want: ErrNotIncreasing},
		{name: "decreasing", xs: []float64{3, 2, 1, 0}, ys: []float64{0, 1, 2, 3}, want: ErrNotIncreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resample(NaturalCubic, tt.xs, tt.ys, 0, 1, 4)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Resample(NaturalCubic, []float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, 0, 0, 4); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("zero step: got %v, want ErrInvalidGrid", err)
	}
}

func TestSortPairs(t *testing.T) {
	xs := []float64{3, 1, 2}
	ys := []float64{30, 10, 20}

	sx, sy, err := SortPairs(xs, ys)
	if err != nil {
		t.Fatalf("SortPairs error: %v", err)
	}
	for i := range sx {
		if sx[i] != float64(i+1) || sy[i] != 10*float64(i+1) {
			t.Fatalf("unexpected order: %v %v", sx, sy)
		}
	}
	if xs[0] != 3 {
		t.Fatal("SortPairs modified its input")
	}
}

func TestEvenGrid(t *testing.T) {
	xs := EvenGrid(300, 1300, 11)
	if len(xs) != 11 || xs[0] != 300 || xs[10] != 1300 || xs[5] != 800 {
		t.Fatalf("unexpected grid: %v", xs)
	}
}
