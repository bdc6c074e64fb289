package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"auraweather.app/internal/core/weather"
	"auraweather.app/internal/ports"
	"auraweather.app/pkg/errors"
)

// OpenMeteoProvider queries the free Open-Meteo daily forecast by
// coordinates. It covers forecast horizons beyond the primary provider's
// tier; the coordinates come from the primary's geocoding response.
type OpenMeteoProvider struct {
	baseURL string
	client  HTTPDoer
	logger  ports.Logger
}

// OpenMeteoProviderParams holds parameters for creating the provider
type OpenMeteoProviderParams struct {
	BaseURL string
	Client  HTTPDoer
	Logger  ports.Logger
}

// NewOpenMeteoProvider creates a new Open-Meteo provider
func NewOpenMeteoProvider(params OpenMeteoProviderParams) *OpenMeteoProvider {
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com/v1"
	}

	return &OpenMeteoProvider{
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// openMeteoDailyResponse carries the parallel daily arrays. The daily
// block decodes into a pointer so its absence is a malformed response.
type openMeteoDailyResponse struct {
	Daily *struct {
		Time             []string  `json:"time"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
		Weathercode      []int     `json:"weathercode"`
		Windspeed10mMax  []float64 `json:"windspeed_10m_max"`
	} `json:"daily"`
}

const openMeteoDateLayout = "2006-01-02"

// FetchDailyForecast retrieves and normalizes a one-entry-per-date daily
// forecast for the given coordinates.
func (p *OpenMeteoProvider) FetchDailyForecast(ctx context.Context, coords weather.Coordinates, days int) ([]weather.ForecastEntry, error) {
	if days < 1 {
		return nil, errors.NewValidationError("forecast days must be positive")
	}

	endpoint := fmt.Sprintf(
		"%s/forecast?latitude=%.4f&longitude=%.4f&daily=temperature_2m_max,temperature_2m_min,weathercode,windspeed_10m_max,precipitation_sum&timezone=auto&forecast_days=%d",
		p.baseURL, coords.Latitude, coords.Longitude, days)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewTransportError("failed to build Open-Meteo request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewTransportError("failed to call Open-Meteo", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close Open-Meteo response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewTransportError(fmt.Sprintf("Open-Meteo returned status %d", resp.StatusCode), nil)
	}

	var payload openMeteoDailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.NewMalformedResponseError("failed to decode Open-Meteo response")
	}

	return normalizeOpenMeteoDaily(&payload)
}

// ProviderName returns the name of this weather provider
func (p *OpenMeteoProvider) ProviderName() string {
	return "open-meteo"
}

// normalizeOpenMeteoDaily maps the parallel daily arrays into one entry
// per date. The provider omits humidity and pressure, so entries carry the
// documented defaults (0 and the standard-pressure constant); temperature
// is the midpoint of the daily extremes and the condition label resolves
// through the WMO code table.
func normalizeOpenMeteoDaily(payload *openMeteoDailyResponse) ([]weather.ForecastEntry, error) {
	daily := payload.Daily
	if daily == nil || len(daily.Time) == 0 {
		return nil, errors.NewMalformedResponseError("Open-Meteo response missing daily block")
	}
	if len(daily.Temperature2mMax) != len(daily.Time) ||
		len(daily.Temperature2mMin) != len(daily.Time) ||
		len(daily.Weathercode) != len(daily.Time) ||
		len(daily.Windspeed10mMax) != len(daily.Time) {
		return nil, errors.NewMalformedResponseError("Open-Meteo daily arrays have mismatched lengths")
	}

	entries := make([]weather.ForecastEntry, 0, len(daily.Time))
	for i, date := range daily.Time {
		day, err := time.ParseInLocation(openMeteoDateLayout, date, time.Local)
		if err != nil {
			return nil, errors.NewMalformedResponseError("Open-Meteo daily date is not ISO formatted")
		}

		max := daily.Temperature2mMax[i]
		min := daily.Temperature2mMin[i]

		entries = append(entries, weather.ForecastEntry{
			Timestamp: day.Unix(),
			Temperature: weather.Temperature{
				Current:         (max + min) / 2,
				FeelsLike:       max,
				PressureHpa:     weather.StandardPressureHpa,
				HumidityPercent: 0,
			},
			Wind: weather.Wind{
				SpeedMps: weather.KphToMps(daily.Windspeed10mMax[i]),
			},
			Conditions:     []weather.Condition{weather.ConditionFromCode(daily.Weathercode[i])},
			DayMinTemp:     min,
			DayMaxTemp:     max,
			HasDayExtremes: true,
		})
	}
	return entries, nil
}
