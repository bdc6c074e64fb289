package external

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auraweather.app/internal/core/weather"
	"auraweather.app/internal/ports"
	"auraweather.app/pkg/errors"
)

func newOpenMeteoTestProvider(serverURL string) *OpenMeteoProvider {
	return NewOpenMeteoProvider(OpenMeteoProviderParams{
		BaseURL: serverURL,
		Logger:  ports.NopLogger{},
	})
}

const openMeteoResponseBody = `{
	"daily": {
		"time": ["2026-03-10", "2026-03-11", "2026-03-12"],
		"temperature_2m_max": [21.0, 19.0, 23.0],
		"temperature_2m_min": [9.0, 7.0, 11.0],
		"weathercode": [0, 61, 9999],
		"windspeed_10m_max": [18.0, 36.0, 7.2]
	}
}`

func TestOpenMeteoProvider_FetchDailyForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "28.6700", r.URL.Query().Get("latitude"))
		assert.Equal(t, "77.2200", r.URL.Query().Get("longitude"))
		assert.Equal(t, "5", r.URL.Query().Get("forecast_days"))
		assert.Equal(t, "auto", r.URL.Query().Get("timezone"))
		fmt.Fprint(w, openMeteoResponseBody)
	}))
	defer server.Close()

	provider := newOpenMeteoTestProvider(server.URL)
	coords := weather.Coordinates{Latitude: 28.67, Longitude: 77.22}
	entries, err := provider.FetchDailyForecast(context.Background(), coords, 5)

	require.NoError(t, err)
	require.Len(t, entries, 3)

	first := entries[0]
	expectedDay, _ := time.ParseInLocation("2006-01-02", "2026-03-10", time.Local)
	assert.Equal(t, expectedDay.Unix(), first.Timestamp)
	// Temperature is the midpoint of the daily extremes.
	assert.InDelta(t, 15.0, first.Temperature.Current, 0.001)
	assert.InDelta(t, 21.0, first.Temperature.FeelsLike, 0.001)
	assert.Equal(t, weather.StandardPressureHpa, first.Temperature.PressureHpa)
	assert.Equal(t, 0, first.Temperature.HumidityPercent)
	assert.InDelta(t, 5.0, first.Wind.SpeedMps, 0.001)
	assert.True(t, first.HasDayExtremes)
	assert.InDelta(t, 21.0, first.DayMaxTemp, 0.001)
	assert.InDelta(t, 9.0, first.DayMinTemp, 0.001)
	assert.Equal(t, "Clear Sky", first.Conditions[0].Label)

	assert.Equal(t, "Slight Rain", entries[1].Conditions[0].Label)
	// Codes outside the WMO table fall back to Unknown.
	assert.Equal(t, "Unknown", entries[2].Conditions[0].Label)
}

func TestOpenMeteoProvider_FetchDailyForecast_MissingDailyBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"latitude": 28.67}`)
	}))
	defer server.Close()

	provider := newOpenMeteoTestProvider(server.URL)
	_, err := provider.FetchDailyForecast(context.Background(), weather.Coordinates{}, 5)

	assert.True(t, errors.IsMalformedResponseError(err))
}

func TestOpenMeteoProvider_FetchDailyForecast_MismatchedArrays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"daily": {
				"time": ["2026-03-10", "2026-03-11"],
				"temperature_2m_max": [21.0],
				"temperature_2m_min": [9.0, 7.0],
				"weathercode": [0, 61],
				"windspeed_10m_max": [18.0, 36.0]
			}
		}`)
	}))
	defer server.Close()

	provider := newOpenMeteoTestProvider(server.URL)
	_, err := provider.FetchDailyForecast(context.Background(), weather.Coordinates{}, 5)

	assert.True(t, errors.IsMalformedResponseError(err))
}

func TestOpenMeteoProvider_FetchDailyForecast_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := newOpenMeteoTestProvider(server.URL)
	_, err := provider.FetchDailyForecast(context.Background(), weather.Coordinates{}, 5)

	assert.True(t, errors.IsTransportError(err))
}

func TestOpenMeteoProvider_FetchDailyForecast_InvalidDays(t *testing.T) {
	provider := newOpenMeteoTestProvider("http://unused.invalid")
	_, err := provider.FetchDailyForecast(context.Background(), weather.Coordinates{}, 0)
	assert.True(t, errors.IsValidationError(err))
}
