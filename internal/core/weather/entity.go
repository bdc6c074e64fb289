// Package weather holds the canonical weather data model and the rules
// that turn provider observations into something the UI can consume.
package weather

import (
	"fmt"
	"strings"
)

// StandardPressureHpa is substituted when a provider omits pressure.
const StandardPressureHpa = 1013

// Coordinates locates the place an observation describes.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Condition describes one weather condition. Index 0 of a condition list
// is authoritative.
type Condition struct {
	Code        int    `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description"`
	IconKey     string `json:"iconKey"`
}

// Temperature groups the thermal readings of an observation.
type Temperature struct {
	Current         float64 `json:"current"`
	FeelsLike       float64 `json:"feelsLike"`
	PressureHpa     int     `json:"pressureHpa"`
	HumidityPercent int     `json:"humidityPercent"`
}

// Wind holds wind readings. Speed is always meters per second; providers
// reporting km/h are converted exactly once at normalization.
type Wind struct {
	SpeedMps         float64 `json:"speedMetersPerSecond"`
	DirectionDegrees int     `json:"directionDegrees"`
}

// CurrentWeather is the canonical current-conditions record.
type CurrentWeather struct {
	Coordinates       Coordinates `json:"coordinates"`
	Conditions        []Condition `json:"conditions"`
	Temperature       Temperature `json:"temperature"`
	Wind              Wind        `json:"wind"`
	CloudCoverPercent int         `json:"cloudCoverPercent"`
	ObservedAt        int64       `json:"observedAtEpochSeconds"`
	LocationName      string      `json:"locationName"`
	CountryCode       string      `json:"countryCode"`
}

// ForecastEntry is one observation interval of a forecast, sub-daily or
// daily depending on the provider. DayMinTemp/DayMaxTemp carry provider
// daily extremes when HasDayExtremes is set.
type ForecastEntry struct {
	Timestamp         int64       `json:"timestampEpochSeconds"`
	Temperature       Temperature `json:"temperature"`
	Wind              Wind        `json:"wind"`
	Conditions        []Condition `json:"conditions"`
	CloudCoverPercent int         `json:"cloudCoverPercent"`
	DayMinTemp        float64     `json:"dayMinTemp,omitempty"`
	DayMaxTemp        float64     `json:"dayMaxTemp,omitempty"`
	HasDayExtremes    bool        `json:"hasDayExtremes,omitempty"`
}

// DailyForecast is one aggregated day of forecast data.
type DailyForecast struct {
	Date            string  `json:"date"`
	Timestamp       int64   `json:"timestampEpochSeconds"`
	TempMax         float64 `json:"tempMax"`
	TempMin         float64 `json:"tempMin"`
	Condition       string  `json:"representativeCondition"`
	HumidityPercent int     `json:"humidityPercent"`
}

// Bundle is what one weather request resolves to: current conditions plus
// the normalized forecast and its daily aggregation.
type Bundle struct {
	Current  *CurrentWeather `json:"current"`
	Forecast []ForecastEntry `json:"forecast"`
	Daily    []DailyForecast `json:"daily"`
}

// PrimaryCondition returns the authoritative condition of the record.
func (w *CurrentWeather) PrimaryCondition() Condition {
	if len(w.Conditions) == 0 {
		return Condition{}
	}
	return w.Conditions[0]
}

// IsValid validates a canonical current-conditions record
func (w *CurrentWeather) IsValid() error {
	if strings.TrimSpace(w.LocationName) == "" {
		return fmt.Errorf("location name cannot be empty")
	}
	if len(w.Conditions) == 0 {
		return fmt.Errorf("at least one condition is required")
	}
	if w.Temperature.Current < -273.15 {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if w.Temperature.HumidityPercent < 0 || w.Temperature.HumidityPercent > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if w.Wind.SpeedMps < 0 {
		return fmt.Errorf("wind speed cannot be negative")
	}
	if w.Wind.DirectionDegrees < 0 || w.Wind.DirectionDegrees > 359 {
		return fmt.Errorf("wind direction must be between 0 and 359")
	}
	if w.CloudCoverPercent < 0 || w.CloudCoverPercent > 100 {
		return fmt.Errorf("cloud cover must be between 0 and 100")
	}
	return nil
}

// String returns a string representation of the record
func (w *CurrentWeather) String() string {
	return fmt.Sprintf("%s, %s: %.1f°C, %s, %.1f m/s wind",
		w.LocationName, w.CountryCode, w.Temperature.Current,
		w.PrimaryCondition().Label, w.Wind.SpeedMps)
}

// Request represents one weather lookup: a city and a forecast horizon.
type Request struct {
	City        string
	HorizonDays int
}

// IsValid validates a weather request against the allowed horizons
func (r *Request) IsValid(allowedHorizons []int) error {
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	for _, d := range allowedHorizons {
		if r.HorizonDays == d {
			return nil
		}
	}
	return fmt.Errorf("forecast horizon %d is not allowed", r.HorizonDays)
}

// NormalizeCity normalizes the city name for consistent processing
func (r *Request) NormalizeCity() {
	r.City = strings.TrimSpace(r.City)
}
