package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "NonEmpty", input: "London", expected: true},
		{name: "Empty", input: "", expected: false},
		{name: "WhitespaceOnly", input: "  \t ", expected: false},
		{name: "PaddedValue", input: "  London  ", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotEmpty(tt.input))
		})
	}
}

func TestIsValidHorizon(t *testing.T) {
	allowed := []int{3, 5, 7}

	tests := []struct {
		name     string
		days     int
		expected bool
	}{
		{name: "ShortestAllowed", days: 3, expected: true},
		{name: "LongestAllowed", days: 7, expected: true},
		{name: "BetweenAllowed", days: 4, expected: false},
		{name: "Zero", days: 0, expected: false},
		{name: "Negative", days: -3, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidHorizon(tt.days, allowed))
		})
	}
}

func TestIsSuggestibleQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected bool
	}{
		{name: "ExactMinimum", query: "Lon", expected: true},
		{name: "LongerThanMinimum", query: "London", expected: true},
		{name: "TooShort", query: "Lo", expected: false},
		{name: "Empty", query: "", expected: false},
		{name: "WhitespacePadding", query: "  Lo  ", expected: false},
		{name: "TwoRuneNonASCII", query: "東京", expected: false},
		{name: "ThreeRuneNonASCII", query: "横浜市", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSuggestibleQuery(tt.query))
		})
	}
}

func TestTrimAndValidate(t *testing.T) {
	trimmed, ok := TrimAndValidate("  London  ")
	assert.True(t, ok)
	assert.Equal(t, "London", trimmed)

	trimmed, ok = TrimAndValidate("   ")
	assert.False(t, ok)
	assert.Empty(t, trimmed)
}
