package weather

import "time"

// dateLayout renders the local calendar date used for day bucketing.
// Grouping compares formatted dates, not epoch-day arithmetic, so entries
// bucket the way a device in the local time zone displays them.
const dateLayout = "2006-01-02"

// AggregateDaily collapses forecast entries into one bucket per local
// calendar day and truncates the order-preserving result to horizonDays.
//
// The first entry seen for a date seeds the bucket, including its condition
// and humidity; later entries on the same date only widen the temperature
// extremes (first-seen wins for non-extremal fields). On input that is
// already one entry per day the result is a field-for-field copy, so the
// aggregation is idempotent.
func AggregateDaily(entries []ForecastEntry, horizonDays int) []DailyForecast {
	if len(entries) == 0 {
		return []DailyForecast{}
	}

	buckets := make(map[string]*DailyForecast, horizonDays)
	order := make([]string, 0, horizonDays)

	for _, entry := range entries {
		date := time.Unix(entry.Timestamp, 0).Format(dateLayout)
		max, min := entryExtremes(entry)

		bucket, seen := buckets[date]
		if !seen {
			buckets[date] = &DailyForecast{
				Date:            date,
				Timestamp:       entry.Timestamp,
				TempMax:         max,
				TempMin:         min,
				Condition:       entryCondition(entry),
				HumidityPercent: entry.Temperature.HumidityPercent,
			}
			order = append(order, date)
			continue
		}

		if max > bucket.TempMax {
			bucket.TempMax = max
		}
		if min < bucket.TempMin {
			bucket.TempMin = min
		}
	}

	if horizonDays < len(order) {
		order = order[:horizonDays]
	}

	daily := make([]DailyForecast, 0, len(order))
	for _, date := range order {
		daily = append(daily, *buckets[date])
	}
	return daily
}

// entryExtremes picks the temperatures an entry contributes to its day
// bucket: provider daily extremes when present, the point temperature
// otherwise.
func entryExtremes(entry ForecastEntry) (max, min float64) {
	if entry.HasDayExtremes {
		return entry.DayMaxTemp, entry.DayMinTemp
	}
	return entry.Temperature.Current, entry.Temperature.Current
}

func entryCondition(entry ForecastEntry) string {
	if len(entry.Conditions) == 0 {
		return ""
	}
	return entry.Conditions[0].Label
}
