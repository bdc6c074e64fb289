// Package external provides adapters for external weather services:
// the key-based current+forecast provider, the coordinate-based daily
// provider, the demo fallback, and the cache backends.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"auraweather.app/internal/core/weather"
	"auraweather.app/internal/ports"
	"auraweather.app/pkg/errors"
)

// HTTPDoer interface for HTTP requests (for testing)
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherAPIProvider talks to WeatherAPI.com: current conditions, hourly
// forecast and city search. All responses are normalized into the
// canonical record shape before they leave this adapter.
type WeatherAPIProvider struct {
	apiKey  string
	baseURL string
	client  HTTPDoer
	logger  ports.Logger
}

// WeatherAPIProviderParams holds parameters for creating the provider
type WeatherAPIProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPDoer
	Logger  ports.Logger
}

// NewWeatherAPIProvider creates a new WeatherAPI.com provider
func NewWeatherAPIProvider(params WeatherAPIProviderParams) *WeatherAPIProvider {
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.weatherapi.com/v1"
	}

	return &WeatherAPIProvider{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// Raw WeatherAPI.com payload shapes. Required sections decode into
// pointers so their absence is detectable and normalization can fail with
// a malformed-response error instead of defaulting silently.

type weatherAPILocation struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
}

type weatherAPICondition struct {
	Code int    `json:"code"`
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type weatherAPICurrent struct {
	TempC            float64              `json:"temp_c"`
	FeelslikeC       float64              `json:"feelslike_c"`
	PressureMb       float64              `json:"pressure_mb"`
	Humidity         int                  `json:"humidity"`
	Cloud            int                  `json:"cloud"`
	WindKph          float64              `json:"wind_kph"`
	WindDegree       int                  `json:"wind_degree"`
	LastUpdatedEpoch int64                `json:"last_updated_epoch"`
	Condition        *weatherAPICondition `json:"condition"`
}

type weatherAPICurrentResponse struct {
	Location *weatherAPILocation `json:"location"`
	Current  *weatherAPICurrent  `json:"current"`
}

type weatherAPIDay struct {
	MintempC float64 `json:"mintemp_c"`
	MaxtempC float64 `json:"maxtemp_c"`
}

type weatherAPIHour struct {
	TimeEpoch  int64                `json:"time_epoch"`
	TempC      float64              `json:"temp_c"`
	FeelslikeC float64              `json:"feelslike_c"`
	PressureMb float64              `json:"pressure_mb"`
	Humidity   int                  `json:"humidity"`
	Cloud      int                  `json:"cloud"`
	WindKph    float64              `json:"wind_kph"`
	WindDegree int                  `json:"wind_degree"`
	Condition  *weatherAPICondition `json:"condition"`
}

type weatherAPIForecastDay struct {
	Day  *weatherAPIDay   `json:"day"`
	Hour []weatherAPIHour `json:"hour"`
}

type weatherAPIForecastResponse struct {
	Location *weatherAPILocation `json:"location"`
	Forecast *struct {
		Forecastday []weatherAPIForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

type weatherAPISearchItem struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// hourStride thins the hourly forecast to 3-hour intervals.
const hourStride = 3

// FetchCurrent retrieves and normalizes current conditions for a city
func (p *WeatherAPIProvider) FetchCurrent(ctx context.Context, city string) (*weather.CurrentWeather, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/current.json?key=%s&q=%s&aqi=no",
		p.baseURL, p.apiKey, url.QueryEscape(city))

	var payload weatherAPICurrentResponse
	if err := p.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	return normalizeWeatherAPICurrent(&payload)
}

// FetchForecast retrieves the hourly forecast and normalizes it into
// 3-hour interval entries carrying the provider's daily extremes.
func (p *WeatherAPIProvider) FetchForecast(ctx context.Context, city string, days int) ([]weather.ForecastEntry, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}
	if days < 1 {
		return nil, errors.NewValidationError("forecast days must be positive")
	}

	endpoint := fmt.Sprintf("%s/forecast.json?key=%s&q=%s&days=%d&aqi=no",
		p.baseURL, p.apiKey, url.QueryEscape(city), days)

	var payload weatherAPIForecastResponse
	if err := p.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	return normalizeWeatherAPIForecast(&payload)
}

// FetchSuggestions resolves partial city names through the search
// endpoint. Failures are the caller's responsibility to downgrade.
func (p *WeatherAPIProvider) FetchSuggestions(ctx context.Context, query string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/search.json?key=%s&q=%s",
		p.baseURL, p.apiKey, url.QueryEscape(query))

	var items []weatherAPISearchItem
	if err := p.getJSON(ctx, endpoint, &items); err != nil {
		return nil, err
	}

	suggestions := make([]string, 0, len(items))
	for _, item := range items {
		suggestions = append(suggestions, fmt.Sprintf("%s, %s", item.Name, item.Country))
	}
	return suggestions, nil
}

// ProviderName returns the name of this weather provider
func (p *WeatherAPIProvider) ProviderName() string {
	return "weatherapi"
}

func (p *WeatherAPIProvider) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewTransportError("failed to build WeatherAPI request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewTransportError("failed to call WeatherAPI", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close WeatherAPI response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
			return errors.NewNotFoundError("city not found")
		}
		return errors.NewTransportError(fmt.Sprintf("WeatherAPI returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewMalformedResponseError("failed to decode WeatherAPI response")
	}
	return nil
}

// normalizeWeatherAPICurrent maps a raw current-conditions payload into
// the canonical record. Wind arrives in km/h and is converted here, once.
func normalizeWeatherAPICurrent(payload *weatherAPICurrentResponse) (*weather.CurrentWeather, error) {
	if payload.Location == nil || payload.Current == nil {
		return nil, errors.NewMalformedResponseError("WeatherAPI response missing location or current block")
	}
	cond, err := normalizeWeatherAPICondition(payload.Current.Condition)
	if err != nil {
		return nil, err
	}

	return &weather.CurrentWeather{
		Coordinates: weather.Coordinates{
			Latitude:  payload.Location.Lat,
			Longitude: payload.Location.Lon,
		},
		Conditions: []weather.Condition{cond},
		Temperature: weather.Temperature{
			Current:         payload.Current.TempC,
			FeelsLike:       payload.Current.FeelslikeC,
			PressureHpa:     int(payload.Current.PressureMb),
			HumidityPercent: payload.Current.Humidity,
		},
		Wind: weather.Wind{
			SpeedMps:         weather.KphToMps(payload.Current.WindKph),
			DirectionDegrees: payload.Current.WindDegree,
		},
		CloudCoverPercent: payload.Current.Cloud,
		ObservedAt:        payload.Current.LastUpdatedEpoch,
		LocationName:      payload.Location.Name,
		CountryCode:       payload.Location.Country,
	}, nil
}

// normalizeWeatherAPIForecast flattens forecastday/hour into entries,
// keeping every third hour and attaching each day's min/max extremes.
func normalizeWeatherAPIForecast(payload *weatherAPIForecastResponse) ([]weather.ForecastEntry, error) {
	if payload.Location == nil || payload.Forecast == nil || len(payload.Forecast.Forecastday) == 0 {
		return nil, errors.NewMalformedResponseError("WeatherAPI response missing forecast days")
	}

	var entries []weather.ForecastEntry
	for _, day := range payload.Forecast.Forecastday {
		if day.Day == nil {
			return nil, errors.NewMalformedResponseError("WeatherAPI forecast day missing extremes")
		}
		for i, hour := range day.Hour {
			if i%hourStride != 0 {
				continue
			}
			cond, err := normalizeWeatherAPICondition(hour.Condition)
			if err != nil {
				return nil, err
			}
			entries = append(entries, weather.ForecastEntry{
				Timestamp: hour.TimeEpoch,
				Temperature: weather.Temperature{
					Current:         hour.TempC,
					FeelsLike:       hour.FeelslikeC,
					PressureHpa:     int(hour.PressureMb),
					HumidityPercent: hour.Humidity,
				},
				Wind: weather.Wind{
					SpeedMps:         weather.KphToMps(hour.WindKph),
					DirectionDegrees: hour.WindDegree,
				},
				Conditions:        []weather.Condition{cond},
				CloudCoverPercent: hour.Cloud,
				DayMinTemp:        day.Day.MintempC,
				DayMaxTemp:        day.Day.MaxtempC,
				HasDayExtremes:    true,
			})
		}
	}
	return entries, nil
}

func normalizeWeatherAPICondition(raw *weatherAPICondition) (weather.Condition, error) {
	if raw == nil || raw.Text == "" {
		return weather.Condition{}, errors.NewMalformedResponseError("WeatherAPI payload missing condition")
	}
	return weather.Condition{
		Code:        raw.Code,
		Label:       raw.Text,
		Description: strings.ToLower(raw.Text),
		IconKey:     weather.IconKeyFromRef(raw.Icon),
	}, nil
}
