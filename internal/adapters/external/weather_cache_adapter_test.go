package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auraweather.app/internal/core/weather"
	"auraweather.app/pkg/errors"
)

func TestWeatherCacheAdapter_RoundTrip(t *testing.T) {
	adapter := NewWeatherCacheAdapter(NewMemoryCacheProvider())
	ctx := context.Background()

	bundle := &weather.Bundle{
		Current: &weather.CurrentWeather{
			LocationName: "London",
			Conditions:   []weather.Condition{{Label: "Sunny"}},
		},
		Forecast: []weather.ForecastEntry{{Timestamp: 1700000000}},
		Daily:    []weather.DailyForecast{{Date: "2026-03-10", TempMax: 21, TempMin: 9}},
	}

	require.NoError(t, adapter.Set(ctx, "weather:London:3", bundle, time.Minute))

	cached, err := adapter.Get(ctx, "weather:London:3")
	require.NoError(t, err)
	assert.Equal(t, "London", cached.Current.LocationName)
	assert.Len(t, cached.Forecast, 1)
	assert.Equal(t, "2026-03-10", cached.Daily[0].Date)
}

func TestWeatherCacheAdapter_MissPassesThrough(t *testing.T) {
	adapter := NewWeatherCacheAdapter(NewMemoryCacheProvider())

	_, err := adapter.Get(context.Background(), "absent")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestWeatherCacheAdapter_CorruptEntryIsAMiss(t *testing.T) {
	backend := NewMemoryCacheProvider()
	adapter := NewWeatherCacheAdapter(backend)
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "key", []byte("not json"), time.Minute))

	_, err := adapter.Get(ctx, "key")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestWeatherCacheAdapter_NilBundle(t *testing.T) {
	adapter := NewWeatherCacheAdapter(NewMemoryCacheProvider())

	err := adapter.Set(context.Background(), "key", nil, time.Minute)
	assert.True(t, errors.IsValidationError(err))
}
