// Command photsim simulates photometric count rates for a star observed
// through an optional atmosphere, filters, a telescope and a detector.
//
// Usage:
//
//	photsim [flags] <command>
//
// Examples:
//
//	photsim run -c observation.yaml
//	photsim run -c observation.yaml --metrics-addr :9090
//	photsim refraction -t 10 -e 2000 0 30 60 85
//	photsim blackbody --catalog ./catalog -p Johnson_V -p Johnson_B 5800 9602
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
