package validation

import (
	"strings"
	"unicode/utf8"
)

// MinSuggestionQueryLen is the shortest partial query that triggers a
// city-suggestion lookup. Shorter input clears the suggestion list instead.
const MinSuggestionQueryLen = 3

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidHorizon reports whether days is one of the allowed forecast horizons
func IsValidHorizon(days int, allowed []int) bool {
	for _, d := range allowed {
		if days == d {
			return true
		}
	}
	return false
}

// IsSuggestibleQuery reports whether a partial query is long enough for a
// suggestion lookup
func IsSuggestibleQuery(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= MinSuggestionQueryLen
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
