// Package spectrum provides the standardized spectrum, a fixed-grid function
// of wavelength shared by every transmission, efficiency and flux curve.
//
// Every valid [Spectrum] is sampled on the same canonical grid
// ([NmLow]..[NmHigh] nm in steps of [Increment] nm, [NPoints] samples), so any
// two spectra combine point-wise without alignment. Spectra are immutable
// values: each operation returns a new Spectrum and never writes to its
// receiver.
//
// Construction never fails loudly. Too few samples, malformed bounds or
// non-monotonic wavelengths produce an invalid spectrum whose values are all
// zero. Validity propagates: combining an invalid spectrum with anything
// yields an invalid spectrum. Callers must check [Spectrum.Valid] rather than
// infer it from the values.
package spectrum
