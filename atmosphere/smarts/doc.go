// Package smarts drives the SMARTS 2.9.5 batch executable as an
// atmosphere.Provider.
//
// SMARTS reads its input cards from a fixed file in its working directory
// and writes a transmittance table next to it, so a [Provider] owns one
// staging directory and serializes calls. Each call writes
// smarts295.inp.txt, removes stale output, runs the executable with a
// timeout and parses smarts295.ext.txt.
package smarts
