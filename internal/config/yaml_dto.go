package config

import "gopkg.in/yaml.v3"

type YAMLConfig struct {
	Catalog     string          `yaml:"catalog"`
	Smarts      YAMLSmarts      `yaml:"smarts"`
	Observation YAMLObservation `yaml:"observation"`
}

type YAMLSmarts struct {
	Dir        string  `yaml:"dir"`
	Executable string  `yaml:"executable"`
	Timeout    string  `yaml:"timeout"`
	CO2        float64 `yaml:"co2_ppmv"`
}

type YAMLObservation struct {
	Star        string     `yaml:"star"`
	Reflector   string     `yaml:"reflector"`
	FrontFilter YAMLFilter `yaml:"front_filter"`
	Telescope   string     `yaml:"telescope"`
	RearFilter  YAMLFilter `yaml:"rear_filter"`
	Detector    string     `yaml:"detector"`
	Site        string     `yaml:"site"`

	ExposureSeconds *float64  `yaml:"exposure_seconds"`
	Airmasses       []float64 `yaml:"airmasses"`
}

// YAMLFilter accepts either a bare filter name or a mapping with thickness
// and coverage.
type YAMLFilter struct {
	Name      string   `yaml:"name"`
	Thickness *float64 `yaml:"thickness"`
	Coverage  *float64 `yaml:"coverage"`
}

// UnmarshalYAML accepts either a bare filter name or a mapping with name, thickness and coverage.
func (f *YAMLFilter) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		f.Name = value.Value
		return nil
	}
	type plain YAMLFilter
	return value.Decode((*plain)(f))
}
