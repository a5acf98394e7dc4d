// Package metrics holds the Prometheus collectors shared by the photometry
// command and its transmission providers.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Call outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

var (
	providerCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photsim_provider_calls_total",
			Help: "Total number of atmospheric transmission provider calls.",
		},
		[]string{"provider", "outcome"},
	)

	providerDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photsim_provider_duration_seconds",
			Help:    "Atmospheric transmission provider call duration in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider"},
	)

	airPathsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photsim_air_paths_total",
			Help: "Total number of air paths computed, by validity.",
		},
		[]string{"valid"},
	)
)

func init() {
	prometheus.MustRegister(providerCallsTotal)
	prometheus.MustRegister(providerDurationSeconds)
	prometheus.MustRegister(airPathsTotal)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveProviderCall records one provider call and its duration.
func ObserveProviderCall(provider, outcome string, d time.Duration) {
	providerCallsTotal.WithLabelValues(provider, outcome).Inc()
	providerDurationSeconds.WithLabelValues(provider).Observe(d.Seconds())
}

// ProviderCalls returns the call counter for one provider and outcome.
func ProviderCalls(provider, outcome string) prometheus.Counter {
	return providerCallsTotal.WithLabelValues(provider, outcome)
}

// CountAirPath records one computed air path.
func CountAirPath(valid bool) {
	label := "false"
	if valid {
		label = "true"
	}
	airPathsTotal.WithLabelValues(label).Inc()
}
