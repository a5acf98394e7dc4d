// Package interp resamples tabulated data onto a uniform grid.
//
// Available methods:
//
//   - [NaturalCubic]: natural cubic spline (default, C2-continuous)
//   - [Akima]:        Akima spline (less overshoot near sharp edges)
//   - [Linear]:       piecewise linear
//
// Fitting is delegated to gonum's interp package. Grid points outside the
// tabulated range take the value of the nearest tabulated endpoint, so
// resampled curves never extrapolate.
package interp
