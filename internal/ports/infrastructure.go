// Package ports defines the infrastructure contracts shared by core use
// cases and adapters. Domain-facing interfaces (providers, repositories)
// live next to their consumers in internal/core.
package ports

import (
	"context"
	"time"
)

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// CacheProvider defines the contract for byte-level caching backends
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit()
	RecordCacheMiss()
	RecordProviderCall(provider string, success bool)
	RecordProviderLatency(provider string, duration time.Duration)
}
