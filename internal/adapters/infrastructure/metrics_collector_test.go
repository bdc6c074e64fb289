package infrastructure

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewPrometheusMetricsCollector_Singleton(t *testing.T) {
	first := NewPrometheusMetricsCollector()
	second := NewPrometheusMetricsCollector()
	assert.Same(t, first, second)
}

func TestPrometheusMetricsCollector_Counters(t *testing.T) {
	collector := NewPrometheusMetricsCollector()

	hitsBefore := testutil.ToFloat64(collector.cacheHits)
	missesBefore := testutil.ToFloat64(collector.cacheMisses)

	collector.RecordCacheHit()
	collector.RecordCacheHit()
	collector.RecordCacheMiss()

	assert.Equal(t, hitsBefore+2, testutil.ToFloat64(collector.cacheHits))
	assert.Equal(t, missesBefore+1, testutil.ToFloat64(collector.cacheMisses))
}

func TestPrometheusMetricsCollector_ProviderCalls(t *testing.T) {
	collector := NewPrometheusMetricsCollector()

	successBefore := testutil.ToFloat64(collector.providerCalls.WithLabelValues("weatherapi", "success"))
	failureBefore := testutil.ToFloat64(collector.providerCalls.WithLabelValues("weatherapi", "failure"))

	collector.RecordProviderCall("weatherapi", true)
	collector.RecordProviderCall("weatherapi", false)
	collector.RecordProviderLatency("weatherapi", 120*time.Millisecond)

	assert.Equal(t, successBefore+1, testutil.ToFloat64(collector.providerCalls.WithLabelValues("weatherapi", "success")))
	assert.Equal(t, failureBefore+1, testutil.ToFloat64(collector.providerCalls.WithLabelValues("weatherapi", "failure")))
}
