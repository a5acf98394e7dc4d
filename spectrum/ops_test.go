package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-photometry/internal/testutil"
)

func rampSpectrum() Spectrum {
	nm, y := testutil.Table(300, 1300, 101, testutil.Ramp(300, -0.5, 0.002))
	return FromSamples(nm, y)
}

func TestClip(t *testing.T) {
	s := rampSpectrum() // -0.5 .. 1.5
	lo := s.ClipToMinOf(0)
	hi := s.ClipToMaxOf(1)
	both := s.ClipTo(0, 1)

	if lo.Min() != 0 || lo.Max() <= 1 {
		t.Fatalf("ClipToMinOf: min=%v max=%v", lo.Min(), lo.Max())
	}
	if hi.Max() != 1 || hi.Min() >= 0 {
		t.Fatalf("ClipToMaxOf: min=%v max=%v", hi.Min(), hi.Max())
	}
	if both.Min() != 0 || both.Max() != 1 {
		t.Fatalf("ClipTo: min=%v max=%v", both.Min(), both.Max())
	}
	if s.Min() >= 0 {
		t.Fatal("clipping modified the receiver")
	}
}

func TestMultiplyByScalesIntegral(t *testing.T) {
	s := rampSpectrum().ClipToMinOf(0)
	base := s.Integral()
	for _, k := range []float64{0, 0.1, 3, -2, 1e6} {
		got := s.MultiplyBy(k).Integral()
		testutil.RequireNear(t, "scaled integral", got, k*base, 1e-9*(1+abs(k*base)))
	}
}

func TestMultiplyAndAdd(t *testing.T) {
	a := Constant(2)
	b := rampSpectrum()

	prod := a.Multiply(b)
	sum := a.Add(b)
	for i := 0; i < NPoints; i += 500 {
		if prod.Y(i) != 2*b.Y(i) {
			t.Fatalf("Multiply index %d: got %v want %v", i, prod.Y(i), 2*b.Y(i))
		}
		if sum.Y(i) != 2+b.Y(i) {
			t.Fatalf("Add index %d: got %v want %v", i, sum.Y(i), 2+b.Y(i))
		}
	}
}

func TestInvalidPropagates(t *testing.T) {
	v := Constant(1)
	bad := Invalid()

	cases := map[string]Spectrum{
		"multiply":  v.Multiply(bad),
		"multiply2": bad.Multiply(v),
		"add":       v.Add(bad),
		"scale":     bad.MultiplyBy(2),
		"clipmin":   bad.ClipToMinOf(0),
		"clipmax":   bad.ClipToMaxOf(1),
		"map":       bad.Map(func(x float64) float64 { return x + 1 }),
	}
	for name, s := range cases {
		if s.Valid() {
			t.Fatalf("%s: expected invalid result", name)
		}
	}
}

func TestIntegralTrapezoid(t *testing.T) {
	// integral of a constant over 1000 nm
	testutil.RequireNear(t, "constant", Constant(1).Integral(), 1000, 1e-6)

	// linear ramp is integrated exactly by the trapezoid rule
	nm, y := testutil.Table(300, 1300, 11, testutil.Ramp(300, 0, 0.001))
	s := FromSamples(nm, y)
	testutil.RequireNear(t, "ramp", s.Integral(), 500, 1e-6)
}

func TestSum(t *testing.T) {
	testutil.RequireNear(t, "sum", Constant(0.5).Sum(), 0.5*NPoints, 1e-9)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
