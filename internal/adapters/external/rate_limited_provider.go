package external

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"auraweather.app/internal/core/weather"
	"auraweather.app/pkg/errors"
)

// RateLimitedProvider wraps a weather provider with a token-bucket rate
// limit shared across all outbound operations.
type RateLimitedProvider struct {
	provider weather.Provider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedProvider creates a rate limited weather provider.
// rps is the maximum requests per second allowed (can be fractional) and
// burst is the maximum burst size.
func NewRateLimitedProvider(provider weather.Provider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [rate limited]", provider.ProviderName()),
	}
}

// FetchCurrent fetches current conditions, respecting the rate limit
func (r *RateLimitedProvider) FetchCurrent(ctx context.Context, city string) (*weather.CurrentWeather, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewTransportError("rate limit wait canceled", err)
	}
	return r.provider.FetchCurrent(ctx, city)
}

// FetchForecast fetches a forecast, respecting the rate limit
func (r *RateLimitedProvider) FetchForecast(ctx context.Context, city string, days int) ([]weather.ForecastEntry, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewTransportError("rate limit wait canceled", err)
	}
	return r.provider.FetchForecast(ctx, city, days)
}

// FetchSuggestions fetches suggestions, respecting the rate limit
func (r *RateLimitedProvider) FetchSuggestions(ctx context.Context, query string) ([]string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return []string{}, nil
	}
	return r.provider.FetchSuggestions(ctx, query)
}

// ProviderName returns the decorated provider name
func (r *RateLimitedProvider) ProviderName() string {
	return r.name
}

var _ weather.Provider = (*RateLimitedProvider)(nil)
