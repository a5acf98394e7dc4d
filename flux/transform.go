package flux

import "github.com/cwbudde/algo-photometry/spectrum"

// PerAreaTransformer modifies a per-area flux, e.g. a filter or air path.
type PerAreaTransformer interface {
	TransformPerArea(PerArea) PerArea
}

// AperturedTransformer modifies an apertured flux, e.g. a filter behind the
// telescope.
type AperturedTransformer interface {
	TransformApertured(Apertured) Apertured
}

// Aperturer collects a per-area flux over a known area.
type Aperturer interface {
	Aperture(PerArea) Apertured
}

// Detector converts an apertured flux into a count rate.
type Detector interface {
	CountRate(Apertured) float64
	InstrumentalMagnitude(Apertured) float64
}

// Band is a reference passband defining a magnitude system.
type Band interface {
	Valid() bool
	Spectrum() spectrum.Spectrum
	ZeroMagFlux() float64
}
