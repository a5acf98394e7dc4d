// Package pipeline drives a source through an observing chain and returns
// detector counts.
//
// The chain order is fixed:
//
//	star → reflector → air path → front filter → telescope → rear filter → detector
//
// [CountsVector] evaluates one exposure per air path. [AirmassSeries] builds
// the air paths from airmasses and adds instrumental magnitudes, and
// [FitExtinction] recovers the first-order extinction coefficient from such a
// series.
package pipeline
