package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeCode(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected string
	}{
		{name: "ClearSky", code: 0, expected: "Clear Sky"},
		{name: "PartlyCloudy", code: 2, expected: "Partly Cloudy"},
		{name: "Fog", code: 45, expected: "Fog"},
		{name: "ModerateRain", code: 63, expected: "Moderate Rain"},
		{name: "ThunderstormWithHeavyHail", code: 99, expected: "Thunderstorm With Heavy Hail"},
		{name: "UnknownCode", code: 9999, expected: "Unknown"},
		{name: "NegativeCode", code: -1, expected: "Unknown"},
		{name: "GapInTable", code: 50, expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DescribeCode(tt.code))
		})
	}
}

func TestIconKeyFromRef(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{
			name:     "FullProviderURL",
			ref:      "//cdn.weatherapi.com/weather/64x64/day/113.png",
			expected: "113",
		},
		{
			name:     "RelativePath",
			ref:      "icons/day/176.png",
			expected: "176",
		},
		{
			name:     "BareFileName",
			ref:      "302.png",
			expected: "302",
		},
		{
			name:     "NoExtension",
			ref:      "day/113",
			expected: "113",
		},
		{
			name:     "EmptyRef",
			ref:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IconKeyFromRef(tt.ref))
		})
	}
}

func TestConditionFromCode(t *testing.T) {
	condition := ConditionFromCode(0)
	assert.Equal(t, 0, condition.Code)
	assert.Equal(t, "Clear Sky", condition.Label)
	assert.Equal(t, "clear sky", condition.Description)
	assert.Empty(t, condition.IconKey)

	unknown := ConditionFromCode(1234)
	assert.Equal(t, "Unknown", unknown.Label)
	assert.Equal(t, "unknown", unknown.Description)
}
