package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	EnvCatalog   = "PHOTSIM_CATALOG"
	EnvSmartsDir = "PHOTSIM_SMARTS_DIR"
)

// Load reads, overrides from the environment and validates the observation
// file at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &OpError{
			Op:   "config.load",
			Kind: KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Config{}, &OpError{
			Op:   "config.load",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	dto.Catalog = getEnv(EnvCatalog, dto.Catalog)
	dto.Smarts.Dir = getEnv(EnvSmartsDir, dto.Smarts.Dir)

	return Map(path, dto)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
