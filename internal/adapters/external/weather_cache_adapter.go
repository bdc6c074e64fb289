package external

import (
	"context"
	"encoding/json"
	"time"

	"auraweather.app/internal/core/weather"
	"auraweather.app/internal/ports"
	"auraweather.app/pkg/errors"
)

// WeatherCacheAdapter implements the typed bundle cache on top of a
// byte-level cache backend, serializing bundles as JSON.
type WeatherCacheAdapter struct {
	backend ports.CacheProvider
}

// NewWeatherCacheAdapter creates a typed cache over a generic backend
func NewWeatherCacheAdapter(backend ports.CacheProvider) *WeatherCacheAdapter {
	return &WeatherCacheAdapter{backend: backend}
}

// Get retrieves a cached weather bundle
func (a *WeatherCacheAdapter) Get(ctx context.Context, key string) (*weather.Bundle, error) {
	data, err := a.backend.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var bundle weather.Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		// A corrupt entry behaves like a miss; the caller refetches.
		return nil, errors.NewNotFoundError("cached weather bundle is corrupt")
	}
	return &bundle, nil
}

// Set stores a weather bundle with TTL
func (a *WeatherCacheAdapter) Set(ctx context.Context, key string, bundle *weather.Bundle, ttl time.Duration) error {
	if bundle == nil {
		return errors.NewValidationError("bundle cannot be nil")
	}

	data, err := json.Marshal(bundle)
	if err != nil {
		return errors.NewValidationError("failed to serialize weather bundle")
	}
	return a.backend.Set(ctx, key, data, ttl)
}

var _ weather.BundleCache = (*WeatherCacheAdapter)(nil)
