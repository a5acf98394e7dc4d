package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-photometry/spectrum"
)

func ExampleFromSamples() {
	nm := []float64{300, 600, 900, 1300}
	t := []float64{0.2, 0.8, 0.8, 0.4}
	s := spectrum.FromSamples(nm, t)
	fmt.Println(s.Valid(), s.Len())
	fmt.Printf("%.2f %.2f\n", s.Y(0), s.Y(3000))
	// Output:
	// true 10001
	// 0.20 0.80
}

func ExampleSpectrum_Integral() {
	s := spectrum.Constant(2).Multiply(spectrum.Constant(0.5))
	fmt.Printf("%.1f\n", s.Integral())
	// Output:
	// 1000.0
}
