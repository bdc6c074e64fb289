package ports

import "time"

// NopLogger discards all log output. Useful as a safe default and in
// tests.
type NopLogger struct{}

func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Warn(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}

// NopMetrics discards all metrics.
type NopMetrics struct{}

func (NopMetrics) RecordCacheHit()                                          {}
func (NopMetrics) RecordCacheMiss()                                         {}
func (NopMetrics) RecordProviderCall(provider string, success bool)         {}
func (NopMetrics) RecordProviderLatency(provider string, dur time.Duration) {}

var (
	_ Logger           = NopLogger{}
	_ MetricsCollector = NopMetrics{}
)
