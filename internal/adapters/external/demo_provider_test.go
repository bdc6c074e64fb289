package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auraweather.app/internal/ports"
)

func newDemoTestProvider(delay time.Duration) *DemoProvider {
	return NewDemoProvider(DemoProviderParams{
		Delay:  delay,
		Now:    func() time.Time { return time.Unix(1700000000, 0) },
		Logger: ports.NopLogger{},
	})
}

func TestDemoProvider_FetchCurrent(t *testing.T) {
	provider := newDemoTestProvider(0)

	record, err := provider.FetchCurrent(context.Background(), "Mumbai")

	require.NoError(t, err)
	assert.Equal(t, "Mumbai", record.LocationName)
	assert.NoError(t, record.IsValid())
	assert.Equal(t, int64(1700000000), record.ObservedAt)
}

func TestDemoProvider_FetchCurrent_BlankCityFallsBack(t *testing.T) {
	provider := newDemoTestProvider(0)

	record, err := provider.FetchCurrent(context.Background(), "   ")

	require.NoError(t, err)
	assert.Equal(t, "New Delhi", record.LocationName)
}

func TestDemoProvider_FetchForecast(t *testing.T) {
	provider := newDemoTestProvider(0)

	entries, err := provider.FetchForecast(context.Background(), "New Delhi", 3)

	require.NoError(t, err)
	// Eight 3-hour intervals per day.
	assert.Len(t, entries, 24)
	assert.Equal(t, int64(1700000000), entries[0].Timestamp)
	assert.Equal(t, int64(1700000000+3*3600), entries[1].Timestamp)

	// Temperatures swing within a day so the aggregation has real extremes.
	assert.Greater(t, entries[7].Temperature.Current, entries[0].Temperature.Current)
}

func TestDemoProvider_FetchSuggestions(t *testing.T) {
	provider := newDemoTestProvider(0)

	suggestions, err := provider.FetchSuggestions(context.Background(), "new")

	require.NoError(t, err)
	assert.Equal(t, []string{"New Delhi", "New York"}, suggestions)

	suggestions, err = provider.FetchSuggestions(context.Background(), "zzz")
	require.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestDemoProvider_RespectsContextCancellation(t *testing.T) {
	provider := newDemoTestProvider(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := provider.FetchCurrent(ctx, "New Delhi")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDemoProvider_ProviderName(t *testing.T) {
	assert.Equal(t, "demo", newDemoTestProvider(0).ProviderName())
}
