// Package catalog looks up tabulated spectral data by collection and name.
//
// A catalog is organised in collections (pflux, filter, passband, telescope,
// detector, site), each holding items keyed by a case-insensitive name. The
// on-disk form is one text file per item:
//
//	Vega (calspec)          <- item name, the lookup key
//	// comment lines start with two slashes
//	3.63e10                 <- optional header lines (count set per collection)
//	300.0  5.55e7           <- wavelength nm, value
//	300.5  5.57e7
//	...
//
// Fields are separated by spaces, tabs or commas. Wavelengths must be
// strictly increasing and at least four data lines are required. Files may
// be gzip-compressed (*.txt.gz).
package catalog
