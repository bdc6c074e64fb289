package weather

import (
	"path"
	"strings"
)

// UnknownCondition is returned for weather codes outside the WMO table.
const UnknownCondition = "Unknown"

// wmoConditionLabels maps WMO 4677 weather interpretation codes, as used by
// coordinate-based daily-forecast providers, to display labels.
var wmoConditionLabels = map[int]string{
	0:  "Clear Sky",
	1:  "Mainly Clear",
	2:  "Partly Cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing Rime Fog",
	51: "Light Drizzle",
	53: "Moderate Drizzle",
	55: "Dense Drizzle",
	56: "Light Freezing Drizzle",
	57: "Dense Freezing Drizzle",
	61: "Slight Rain",
	63: "Moderate Rain",
	65: "Heavy Rain",
	66: "Light Freezing Rain",
	67: "Heavy Freezing Rain",
	71: "Slight Snowfall",
	73: "Moderate Snowfall",
	75: "Heavy Snowfall",
	77: "Snow Grains",
	80: "Slight Rain Showers",
	81: "Moderate Rain Showers",
	82: "Violent Rain Showers",
	85: "Slight Snow Showers",
	86: "Heavy Snow Showers",
	95: "Thunderstorm",
	96: "Thunderstorm With Slight Hail",
	99: "Thunderstorm With Heavy Hail",
}

// DescribeCode resolves a numeric weather code to a display label. Codes
// outside the table resolve to UnknownCondition.
func DescribeCode(code int) string {
	if label, ok := wmoConditionLabels[code]; ok {
		return label
	}
	return UnknownCondition
}

// IconKeyFromRef derives a compact icon key from a provider icon reference
// by stripping any path prefix and file extension. An empty reference
// yields an empty key.
func IconKeyFromRef(ref string) string {
	if ref == "" {
		return ""
	}
	base := path.Base(ref)
	return strings.TrimSuffix(base, path.Ext(base))
}

// ConditionFromCode builds a condition for a provider that supplies only a
// numeric code, resolving the label through the WMO table.
func ConditionFromCode(code int) Condition {
	label := DescribeCode(code)
	return Condition{
		Code:        code,
		Label:       label,
		Description: strings.ToLower(label),
	}
}
