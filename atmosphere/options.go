package atmosphere

import (
	"io"
	"log/slog"
)

// Config holds tunables shared by every AirPath an Atmosphere makes.
type Config struct {
	Logger *slog.Logger

	// MinimumZenithAngle is the smallest angle, in degrees, handed to the
	// provider. Smaller angles are corrected from it.
	MinimumZenithAngle float64

	// RefractionFraction scales the refraction correction applied before
	// the provider call.
	RefractionFraction float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		Logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		MinimumZenithAngle: 1,
		RefractionFraction: 0.95,
	}
}

// WithLogger sets the logger used for provider failures and corrections.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithMinimumZenithAngle sets the near-zenith floor, in [0, 90] degrees.
func WithMinimumZenithAngle(deg float64) Option {
	return func(cfg *Config) {
		if deg >= 0 && deg <= 90 {
			cfg.MinimumZenithAngle = deg
		}
	}
}

// WithRefractionFraction sets the damping of the refraction correction, in
// [0, 1]. Zero disables refraction.
func WithRefractionFraction(f float64) Option {
	return func(cfg *Config) {
		if f >= 0 && f <= 1 {
			cfg.RefractionFraction = f
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
