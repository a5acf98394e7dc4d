// Package flux models photon flux density as it travels from a source to a
// detector.
//
// A [PerArea] flux is photon flux per unit collecting area
// (photons/s/nm/m²); it is what a star delivers to the top of the atmosphere
// and what filters and air paths modify. Passing it through an [Aperturer]
// such as a telescope yields an [Apertured] flux (photons/s/nm), which a
// [Detector] integrates into a count rate.
//
// Every transform is a pure function returning a new value. Invalidity is
// carried as a flag and propagates through every step, so one bad input
// degrades to a zero result rather than an error.
//
// Capabilities are expressed by small interfaces so that
// flux.Through(x) and the transformer's own method are the same call:
//
//	p.Through(filter)          == filter.TransformPerArea(p)
//	p.ThroughAperture(scope)   == scope.Aperture(p)
//	ap.Through(filter)         == filter.TransformApertured(ap)
package flux
