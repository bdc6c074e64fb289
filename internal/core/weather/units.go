package weather

// KphToMps converts a wind speed from km/h to m/s. Providers reporting in
// km/h are converted exactly once at normalization, never re-applied.
func KphToMps(kph float64) float64 {
	return kph / 3.6
}
