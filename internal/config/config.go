// Package config loads the photsim observation file.
package config

import "time"

// Config is a validated observation setup.
type Config struct {
	Catalog     string
	Smarts      Smarts
	Observation Observation
}

// Smarts locates the SMARTS staging directory and executable.
type Smarts struct {
	Dir        string
	Executable string
	Timeout    time.Duration
	CO2        float64 // ppmv; zero selects the provider default
}

// Filter names a catalog filter with its thickness and coverage.
type Filter struct {
	Name      string
	Thickness float64
	Coverage  float64
}

// Observation names the elements of the chain. Empty filter or reflector
// names mean none; an empty site means no atmosphere.
type Observation struct {
	Star            string
	Reflector       string
	FrontFilter     Filter
	Telescope       string
	RearFilter      Filter
	Detector        string
	Site            string
	ExposureSeconds float64
	Airmasses       []float64
}

const (
	defaultTimeout  = 30 * time.Second
	defaultExposure = 1.0
)
