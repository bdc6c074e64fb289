package external

import (
	"context"

	"auraweather.app/internal/core/weather"
	"auraweather.app/internal/ports"
	"auraweather.app/pkg/errors"
)

// WeatherProviderManager orchestrates the live providers behind the
// weather.Provider contract. Current conditions, native-horizon forecasts
// and suggestions go to the primary (city-keyed) provider; a horizon
// beyond the primary's tier is satisfied by the coordinate-based secondary
// provider, using coordinates learned from the primary's current-conditions
// response. That substitution is transparent, never a user-visible error.
type WeatherProviderManager struct {
	primary       *WeatherAPIProvider
	secondary     *OpenMeteoProvider
	nativeHorizon int
	logger        ports.Logger
}

// ProviderManagerParams holds parameters for creating the manager
type ProviderManagerParams struct {
	Primary       *WeatherAPIProvider
	Secondary     *OpenMeteoProvider
	NativeHorizon int
	Logger        ports.Logger
}

// NewWeatherProviderManager creates the live provider orchestrator
func NewWeatherProviderManager(params ProviderManagerParams) (*WeatherProviderManager, error) {
	if params.Primary == nil {
		return nil, errors.NewConfigurationError("primary weather provider is required", nil)
	}
	if params.Secondary == nil {
		return nil, errors.NewConfigurationError("secondary weather provider is required", nil)
	}
	if params.NativeHorizon < 1 {
		return nil, errors.NewConfigurationError("native forecast horizon must be positive", nil)
	}

	return &WeatherProviderManager{
		primary:       params.Primary,
		secondary:     params.Secondary,
		nativeHorizon: params.NativeHorizon,
		logger:        params.Logger,
	}, nil
}

// FetchCurrent resolves current conditions through the primary provider
func (m *WeatherProviderManager) FetchCurrent(ctx context.Context, city string) (*weather.CurrentWeather, error) {
	return m.primary.FetchCurrent(ctx, city)
}

// FetchForecast resolves a forecast for the requested horizon. Within the
// primary's native tier this is one call; beyond it, the primary's
// current-conditions response doubles as the geocoding step and the
// secondary provider is queried by coordinates.
func (m *WeatherProviderManager) FetchForecast(ctx context.Context, city string, days int) ([]weather.ForecastEntry, error) {
	if days <= m.nativeHorizon {
		return m.primary.FetchForecast(ctx, city, days)
	}

	m.logger.Debug("Forecast horizon beyond native tier, using coordinate provider",
		ports.F("city", city),
		ports.F("days", days),
		ports.F("native_horizon", m.nativeHorizon))

	current, err := m.primary.FetchCurrent(ctx, city)
	if err != nil {
		return nil, err
	}

	entries, err := m.secondary.FetchDailyForecast(ctx, current.Coordinates, days)
	if err != nil {
		return nil, err
	}

	m.logger.Debug("Extended forecast resolved",
		ports.F("city", city),
		ports.F("provider", m.secondary.ProviderName()),
		ports.F("entries", len(entries)))
	return entries, nil
}

// FetchSuggestions resolves city suggestions through the primary
// provider. Any failure downgrades to an empty list; suggestion lookups
// never surface a hard error.
func (m *WeatherProviderManager) FetchSuggestions(ctx context.Context, query string) ([]string, error) {
	suggestions, err := m.primary.FetchSuggestions(ctx, query)
	if err != nil {
		m.logger.Warn("Suggestion lookup failed",
			ports.F("query", query),
			ports.F("error", err))
		return []string{}, nil
	}
	return suggestions, nil
}

// ProviderName returns the name of the active provider configuration
func (m *WeatherProviderManager) ProviderName() string {
	return m.primary.ProviderName()
}
