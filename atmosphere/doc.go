// Package atmosphere models an observing site and the air path between it
// and a source at a given zenith angle.
//
// An [Atmosphere] holds a [Site] and its current [Weather]; it is either
// exo-atmospheric (perfectly transparent) or backed by a [Provider] that
// computes clear-sky transmission, typically the SMARTS radiative-transfer
// code in package smarts. [Atmosphere.MakeAirPathAtZenithAngle] builds an
// immutable [AirPath] that snapshots site and weather and acts as a
// flux.PerAreaTransformer.
//
// Two corrections are applied around the provider call:
//
//   - refraction: the provider is asked for the apparent zenith angle
//     (Astronomical Almanac formula, damped by a configurable fraction)
//   - near-zenith stabilization: angles below a minimum (1° by default) are
//     computed at the minimum and rescaled to the true angle by the ratio of
//     secants, i.e. Beer-Lambert scaling of optical depth.
package atmosphere
