package external

import (
	"context"
	"strings"
	"time"

	"auraweather.app/internal/core/weather"
	"auraweather.app/internal/ports"
)

// DemoProvider resolves canned sample data after a fixed artificial delay,
// standing in for the live providers in the offline/demo configuration.
// It never fails.
type DemoProvider struct {
	delay  time.Duration
	now    func() time.Time
	logger ports.Logger
}

// DemoProviderParams holds parameters for creating the demo provider
type DemoProviderParams struct {
	Delay  time.Duration
	Now    func() time.Time
	Logger ports.Logger
}

// NewDemoProvider creates a provider serving canned sample data
func NewDemoProvider(params DemoProviderParams) *DemoProvider {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &DemoProvider{
		delay:  params.Delay,
		now:    now,
		logger: params.Logger,
	}
}

var demoCities = []string{"New Delhi", "Mumbai", "London", "New York", "Tokyo", "Paris"}

// FetchCurrent returns a canned current-conditions sample
func (p *DemoProvider) FetchCurrent(ctx context.Context, city string) (*weather.CurrentWeather, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	name := city
	if strings.TrimSpace(name) == "" {
		name = "New Delhi"
	}

	return &weather.CurrentWeather{
		Coordinates: weather.Coordinates{Latitude: 28.6139, Longitude: 77.209},
		Conditions: []weather.Condition{{
			Code:        1000,
			Label:       "Clear",
			Description: "clear sky",
			IconKey:     "113",
		}},
		Temperature: weather.Temperature{
			Current:         28,
			FeelsLike:       29.5,
			PressureHpa:     weather.StandardPressureHpa,
			HumidityPercent: 45,
		},
		Wind: weather.Wind{
			SpeedMps:         5,
			DirectionDegrees: 240,
		},
		CloudCoverPercent: 10,
		ObservedAt:        p.now().Unix(),
		LocationName:      name,
		CountryCode:       "India",
	}, nil
}

// FetchForecast returns canned 3-hour interval entries covering the
// requested horizon.
func (p *DemoProvider) FetchForecast(ctx context.Context, city string, days int) ([]weather.ForecastEntry, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	start := p.now().Unix()
	entries := make([]weather.ForecastEntry, 0, days*8)
	for i := 0; i < days*8; i++ {
		// A gentle diurnal swing keeps the daily min/max distinct.
		temp := 22.0 + 6.0*float64(i%8)/8.0
		entries = append(entries, weather.ForecastEntry{
			Timestamp: start + int64(i)*3*3600,
			Temperature: weather.Temperature{
				Current:         temp,
				FeelsLike:       temp + 1,
				PressureHpa:     1010 + i%8,
				HumidityPercent: 40 + i%8*2,
			},
			Wind: weather.Wind{
				SpeedMps:         5.5,
				DirectionDegrees: 200,
			},
			Conditions: []weather.Condition{{
				Code:        1003,
				Label:       "Clouds",
				Description: "scattered clouds",
				IconKey:     "03d",
			}},
			CloudCoverPercent: 40,
		})
	}
	return entries, nil
}

// FetchSuggestions filters the canned city list by prefix
func (p *DemoProvider) FetchSuggestions(ctx context.Context, query string) ([]string, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	suggestions := []string{}
	for _, city := range demoCities {
		if strings.HasPrefix(strings.ToLower(city), strings.ToLower(query)) {
			suggestions = append(suggestions, city)
		}
	}
	return suggestions, nil
}

// ProviderName returns the name of this weather provider
func (p *DemoProvider) ProviderName() string {
	return "demo"
}

func (p *DemoProvider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
