// Package optics implements the optical elements of an observing chain:
// filters, reference passbands, telescopes and detectors.
//
// Each element owns a transmission (or quantum-efficiency) spectrum on the
// canonical grid and satisfies the flux capability interfaces it supports:
//
//	Filter, Passband  flux.PerAreaTransformer, flux.AperturedTransformer
//	Passband          flux.Band
//	Telescope         flux.Aperturer
//	Detector          flux.Detector
//
// Elements are built either ab initio from a spectrum (NewFilter, NewPassband,
// NewTelescope, NewDetector) or from a catalog (LoadFilter, LoadPassband,
// LoadTelescope, LoadDetector). Construction never fails; a bad input yields
// an element whose Valid method reports false.
package optics
