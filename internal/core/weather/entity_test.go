package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCurrent() CurrentWeather {
	return CurrentWeather{
		Coordinates: Coordinates{Latitude: 28.67, Longitude: 77.22},
		Conditions: []Condition{
			{Code: 1000, Label: "Sunny", Description: "sunny", IconKey: "113"},
		},
		Temperature: Temperature{
			Current:         28.0,
			FeelsLike:       29.5,
			PressureHpa:     1012,
			HumidityPercent: 45,
		},
		Wind:              Wind{SpeedMps: 5.0, DirectionDegrees: 250},
		CloudCoverPercent: 10,
		ObservedAt:        1700000000,
		LocationName:      "New Delhi",
		CountryCode:       "IN",
	}
}

func TestCurrentWeather_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(w *CurrentWeather)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "ValidRecord",
			mutate: func(w *CurrentWeather) {},
		},
		{
			name:    "EmptyLocationName",
			mutate:  func(w *CurrentWeather) { w.LocationName = "" },
			wantErr: true,
			errMsg:  "location name cannot be empty",
		},
		{
			name:    "WhitespaceLocationName",
			mutate:  func(w *CurrentWeather) { w.LocationName = "   " },
			wantErr: true,
			errMsg:  "location name cannot be empty",
		},
		{
			name:    "NoConditions",
			mutate:  func(w *CurrentWeather) { w.Conditions = nil },
			wantErr: true,
			errMsg:  "at least one condition is required",
		},
		{
			name:    "TemperatureBelowAbsoluteZero",
			mutate:  func(w *CurrentWeather) { w.Temperature.Current = -274.0 },
			wantErr: true,
			errMsg:  "temperature cannot be below absolute zero",
		},
		{
			name:   "TemperatureAtAbsoluteZero",
			mutate: func(w *CurrentWeather) { w.Temperature.Current = -273.15 },
		},
		{
			name:    "NegativeHumidity",
			mutate:  func(w *CurrentWeather) { w.Temperature.HumidityPercent = -1 },
			wantErr: true,
			errMsg:  "humidity must be between 0 and 100",
		},
		{
			name:    "HumidityOverOneHundred",
			mutate:  func(w *CurrentWeather) { w.Temperature.HumidityPercent = 101 },
			wantErr: true,
			errMsg:  "humidity must be between 0 and 100",
		},
		{
			name:   "ZeroHumidity",
			mutate: func(w *CurrentWeather) { w.Temperature.HumidityPercent = 0 },
		},
		{
			name:    "NegativeWindSpeed",
			mutate:  func(w *CurrentWeather) { w.Wind.SpeedMps = -0.1 },
			wantErr: true,
			errMsg:  "wind speed cannot be negative",
		},
		{
			name:    "WindDirectionOutOfRange",
			mutate:  func(w *CurrentWeather) { w.Wind.DirectionDegrees = 360 },
			wantErr: true,
			errMsg:  "wind direction must be between 0 and 359",
		},
		{
			name:   "WindDirectionNorth",
			mutate: func(w *CurrentWeather) { w.Wind.DirectionDegrees = 0 },
		},
		{
			name:    "CloudCoverOverOneHundred",
			mutate:  func(w *CurrentWeather) { w.CloudCoverPercent = 110 },
			wantErr: true,
			errMsg:  "cloud cover must be between 0 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validCurrent()
			tt.mutate(&record)
			err := record.IsValid()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCurrentWeather_PrimaryCondition(t *testing.T) {
	record := validCurrent()
	record.Conditions = append(record.Conditions, Condition{Label: "Secondary"})
	assert.Equal(t, "Sunny", record.PrimaryCondition().Label)

	record.Conditions = nil
	assert.Equal(t, Condition{}, record.PrimaryCondition())
}

func TestCurrentWeather_String(t *testing.T) {
	record := validCurrent()
	assert.Equal(t, "New Delhi, IN: 28.0°C, Sunny, 5.0 m/s wind", record.String())
}

func TestRequest_IsValid(t *testing.T) {
	allowed := []int{3, 5, 7}

	tests := []struct {
		name    string
		request Request
		wantErr bool
		errMsg  string
	}{
		{
			name:    "ValidRequest",
			request: Request{City: "London", HorizonDays: 3},
		},
		{
			name:    "EmptyCity",
			request: Request{City: "", HorizonDays: 3},
			wantErr: true,
			errMsg:  "city cannot be empty",
		},
		{
			name:    "WhitespaceOnlyCity",
			request: Request{City: "   ", HorizonDays: 3},
			wantErr: true,
			errMsg:  "city cannot be empty",
		},
		{
			name:    "HorizonNotAllowed",
			request: Request{City: "London", HorizonDays: 4},
			wantErr: true,
			errMsg:  "forecast horizon 4 is not allowed",
		},
		{
			name:    "ExtendedHorizon",
			request: Request{City: "London", HorizonDays: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.IsValid(allowed)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequest_NormalizeCity(t *testing.T) {
	request := Request{City: "  New Delhi \t", HorizonDays: 3}
	request.NormalizeCity()
	assert.Equal(t, "New Delhi", request.City)
}
