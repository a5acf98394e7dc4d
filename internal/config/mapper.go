package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Map validates dto and resolves relative directories against the
// directory of path.
func Map(path string, dto YAMLConfig) (Config, error) {
	if strings.TrimSpace(dto.Catalog) == "" {
		return Config{}, invalidField(path, "catalog", "catalog directory is required")
	}
	obs := dto.Observation
	for _, req := range []struct{ field, v string }{
		{"observation.star", obs.Star},
		{"observation.telescope", obs.Telescope},
		{"observation.detector", obs.Detector},
	} {
		if strings.TrimSpace(req.v) == "" {
			return Config{}, invalidField(path, req.field, "name is required")
		}
	}

	cfg := Config{
		Catalog: resolve(path, dto.Catalog),
		Smarts: Smarts{
			Executable: dto.Smarts.Executable,
			Timeout:    defaultTimeout,
			CO2:        dto.Smarts.CO2,
		},
		Observation: Observation{
			Star:            obs.Star,
			Reflector:       obs.Reflector,
			Telescope:       obs.Telescope,
			Detector:        obs.Detector,
			Site:            obs.Site,
			ExposureSeconds: defaultExposure,
			Airmasses:       []float64{1},
		},
	}

	if obs.Site != "" {
		if strings.TrimSpace(dto.Smarts.Dir) == "" {
			return Config{}, invalidField(path, "smarts.dir", "required when a site is given")
		}
		cfg.Smarts.Dir = resolve(path, dto.Smarts.Dir)
	}
	if dto.Smarts.Timeout != "" {
		d, err := time.ParseDuration(dto.Smarts.Timeout)
		if err != nil || d <= 0 {
			return Config{}, invalidField(path, "smarts.timeout", fmt.Sprintf("invalid duration %q", dto.Smarts.Timeout))
		}
		cfg.Smarts.Timeout = d
	}
	if dto.Smarts.CO2 < 0 {
		return Config{}, invalidField(path, "smarts.co2_ppmv", "must not be negative")
	}

	var err error
	if cfg.Observation.FrontFilter, err = mapFilter(path, "observation.front_filter", obs.FrontFilter); err != nil {
		return Config{}, err
	}
	if cfg.Observation.RearFilter, err = mapFilter(path, "observation.rear_filter", obs.RearFilter); err != nil {
		return Config{}, err
	}

	if obs.ExposureSeconds != nil {
		if *obs.ExposureSeconds < 0 {
			return Config{}, invalidField(path, "observation.exposure_seconds", "must not be negative")
		}
		cfg.Observation.ExposureSeconds = *obs.ExposureSeconds
	}
	if len(obs.Airmasses) > 0 {
		for i, x := range obs.Airmasses {
			if !(x >= 1) {
				return Config{}, invalidField(path, fmt.Sprintf("observation.airmasses[%d]", i), "airmass must be at least 1")
			}
		}
		cfg.Observation.Airmasses = append([]float64(nil), obs.Airmasses...)
	}
	return cfg, nil
}

func mapFilter(path, field string, f YAMLFilter) (Filter, error) {
	out := Filter{Name: f.Name, Thickness: 1, Coverage: 1}
	if f.Thickness != nil {
		if *f.Thickness < 0 {
			return Filter{}, invalidField(path, field+".thickness", "must not be negative")
		}
		out.Thickness = *f.Thickness
	}
	if f.Coverage != nil {
		if *f.Coverage < 0 || *f.Coverage > 1 {
			return Filter{}, invalidField(path, field+".coverage", "must be within [0, 1]")
		}
		out.Coverage = *f.Coverage
	}
	return out, nil
}

func resolve(path, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(filepath.Dir(path), dir)
}
