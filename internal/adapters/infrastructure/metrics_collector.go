package infrastructure

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"auraweather.app/internal/ports"
)

// PrometheusMetricsCollector implements the MetricsCollector port with
// Prometheus counters for cache efficiency and provider calls.
type PrometheusMetricsCollector struct {
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	providerCalls   *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec
}

var (
	collectorOnce sync.Once
	collector     *PrometheusMetricsCollector
)

// NewPrometheusMetricsCollector returns the process-wide metrics
// collector. Collectors register with the default registry, so the
// instance is shared.
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	collectorOnce.Do(func() {
		collector = &PrometheusMetricsCollector{
			cacheHits: promauto.NewCounter(prometheus.CounterOpts{
				Name: "aura_weather_cache_hits_total",
				Help: "The total number of weather bundle cache hits",
			}),
			cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
				Name: "aura_weather_cache_misses_total",
				Help: "The total number of weather bundle cache misses",
			}),
			providerCalls: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "aura_weather_provider_requests_total",
					Help: "The total number of weather provider requests",
				},
				[]string{"provider", "status"},
			),
			providerLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "aura_weather_provider_duration_seconds",
					Help:    "Weather provider request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"provider"},
			),
		}
	})
	return collector
}

// RecordCacheHit increments the cache hit counter
func (m *PrometheusMetricsCollector) RecordCacheHit() {
	m.cacheHits.Inc()
}

// RecordCacheMiss increments the cache miss counter
func (m *PrometheusMetricsCollector) RecordCacheMiss() {
	m.cacheMisses.Inc()
}

// RecordProviderCall counts one provider request by outcome
func (m *PrometheusMetricsCollector) RecordProviderCall(provider string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	m.providerCalls.WithLabelValues(provider, status).Inc()
}

// RecordProviderLatency observes one provider round trip
func (m *PrometheusMetricsCollector) RecordProviderLatency(provider string, duration time.Duration) {
	m.providerLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

var _ ports.MetricsCollector = (*PrometheusMetricsCollector)(nil)
