package pipeline

import (
	"github.com/cwbudde/algo-photometry/flux"
)

// PerAreaElement is a valid-aware element acting on per-area flux.
type PerAreaElement interface {
	flux.PerAreaTransformer
	Valid() bool
}

// AperturedElement is a valid-aware element acting on apertured flux.
type AperturedElement interface {
	flux.AperturedTransformer
	Valid() bool
}

// ApertureElement is a valid-aware collector such as a telescope.
type ApertureElement interface {
	flux.Aperturer
	Valid() bool
}

// DetectorElement is a valid-aware detector.
type DetectorElement interface {
	flux.Detector
	Valid() bool
}

// Chain is everything between the source and the counts except the air
// path. Reflector and the filters may be nil, meaning nothing is there.
type Chain struct {
	Star        flux.PerArea
	Reflector   PerAreaElement
	FrontFilter PerAreaElement
	Telescope   ApertureElement
	RearFilter  AperturedElement
	Detector    DetectorElement
}

// Valid reports whether the star and every present element are valid. A
// chain without telescope or detector is invalid.
func (c Chain) Valid() bool {
	if !c.Star.Valid() || c.Telescope == nil || c.Detector == nil {
		return false
	}
	if !c.Telescope.Valid() || !c.Detector.Valid() {
		return false
	}
	for _, e := range []PerAreaElement{c.Reflector, c.FrontFilter} {
		if e != nil && !e.Valid() {
			return false
		}
	}
	return c.RearFilter == nil || c.RearFilter.Valid()
}

// Detect propagates the star through the chain and path and returns the
// flux arriving at the detector. A nil path means no atmosphere.
func (c Chain) Detect(path flux.PerAreaTransformer) flux.Apertured {
	p := c.Star
	if c.Reflector != nil {
		p = p.Through(c.Reflector)
	}
	if path != nil {
		p = p.Through(path)
	}
	if c.FrontFilter != nil {
		p = p.Through(c.FrontFilter)
	}
	a := p.ThroughAperture(c.Telescope)
	if c.RearFilter != nil {
		a = a.Through(c.RearFilter)
	}
	return a
}

// CountRate returns the detector count rate through path, counts/s. It is
// zero if the chain or the propagated flux is invalid.
func (c Chain) CountRate(path flux.PerAreaTransformer) float64 {
	if !c.Valid() {
		return 0
	}
	a := c.Detect(path)
	if !a.Valid() {
		return 0
	}
	return a.CountRate(c.Detector)
}
