package weather

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"auraweather.app/internal/ports"
	"auraweather.app/pkg/errors"
	"auraweather.app/pkg/validation"
)

// Provider is the weather client contract the use case consumes. One
// implementation talks to the live providers, another resolves canned demo
// data; selection happens at wiring time, never by shape-sniffing.
type Provider interface {
	FetchCurrent(ctx context.Context, city string) (*CurrentWeather, error)
	FetchForecast(ctx context.Context, city string, days int) ([]ForecastEntry, error)
	FetchSuggestions(ctx context.Context, query string) ([]string, error)
	ProviderName() string
}

// BundleCache caches resolved weather bundles keyed by city and horizon.
type BundleCache interface {
	Get(ctx context.Context, key string) (*Bundle, error)
	Set(ctx context.Context, key string, bundle *Bundle, ttl time.Duration) error
}

// Options carries the use-case configuration values.
type Options struct {
	AllowedHorizons []int
	EnableCache     bool
	CacheTTL        time.Duration
}

type UseCase struct {
	provider    Provider
	cache       BundleCache
	store       *Store
	preferences PreferencesRepository
	options     Options
	logger      ports.Logger
	metrics     ports.MetricsCollector
}

type UseCaseDependencies struct {
	Provider Provider
	Cache    BundleCache
	Store    *Store
	// Preferences is optional; without it city/horizon changes are not
	// persisted across restarts.
	Preferences PreferencesRepository
	Options     Options
	Logger      ports.Logger
	Metrics     ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("state store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics collector is required")
	}
	if len(deps.Options.AllowedHorizons) == 0 {
		return nil, errors.NewValidationError("at least one forecast horizon is required")
	}

	return &UseCase{
		provider:    deps.Provider,
		cache:       deps.Cache,
		store:       deps.Store,
		preferences: deps.Preferences,
		options:     deps.Options,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
	}, nil
}

// Snapshot exposes the current application state.
func (uc *UseCase) Snapshot() State {
	return uc.store.Snapshot()
}

// SetCity switches the active city. A changed pair is persisted and
// triggers exactly one fetch; setting the same city again is a no-op.
func (uc *UseCase) SetCity(ctx context.Context, city string) State {
	trimmed, ok := validation.TrimAndValidate(city)
	if !ok {
		return uc.store.Snapshot()
	}
	if !uc.store.SetCity(trimmed) {
		return uc.store.Snapshot()
	}

	uc.savePreferences(ctx)
	snap := uc.store.Snapshot()
	return uc.RequestWeather(ctx, snap.ActiveCity, snap.HorizonDays)
}

// SetHorizon switches the forecast horizon with the same
// one-fetch-per-change contract as SetCity.
func (uc *UseCase) SetHorizon(ctx context.Context, days int) State {
	if !validation.IsValidHorizon(days, uc.options.AllowedHorizons) {
		uc.logger.Warn("Rejected forecast horizon outside the allowed set",
			ports.F("days", days))
		return uc.store.Snapshot()
	}
	if !uc.store.SetHorizon(days) {
		return uc.store.Snapshot()
	}

	uc.savePreferences(ctx)
	snap := uc.store.Snapshot()
	return uc.RequestWeather(ctx, snap.ActiveCity, snap.HorizonDays)
}

// RestorePreferences seeds the store from the persisted city/horizon
// pair, keeping the configured defaults when nothing was saved.
func (uc *UseCase) RestorePreferences(ctx context.Context) {
	if uc.preferences == nil {
		return
	}
	prefs, err := uc.preferences.Load(ctx)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Warn("Failed to load preferences", ports.F("error", err))
		}
		return
	}
	uc.store.SetCity(prefs.ActiveCity)
	if validation.IsValidHorizon(prefs.HorizonDays, uc.options.AllowedHorizons) {
		uc.store.SetHorizon(prefs.HorizonDays)
	}
}

func (uc *UseCase) savePreferences(ctx context.Context) {
	if uc.preferences == nil {
		return
	}
	snap := uc.store.Snapshot()
	err := uc.preferences.Save(ctx, Preferences{
		ActiveCity:  snap.ActiveCity,
		HorizonDays: snap.HorizonDays,
	})
	if err != nil {
		uc.logger.Warn("Failed to save preferences", ports.F("error", err))
	}
}

// GetWeather resolves current conditions plus the normalized and
// day-aggregated forecast for one city/horizon pair.
func (uc *UseCase) GetWeather(ctx context.Context, request Request) (*Bundle, error) {
	if err := request.IsValid(uc.options.AllowedHorizons); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}
	request.NormalizeCity()

	bundle, err := uc.getWeatherWithCache(ctx, request)
	if err != nil {
		uc.logger.Error("Failed to get weather",
			ports.F("city", request.City),
			ports.F("days", request.HorizonDays),
			ports.F("error", err))
		return nil, fmt.Errorf("get weather for city %s: %w", request.City, err)
	}

	uc.logger.Debug("Weather retrieved successfully",
		ports.F("city", request.City),
		ports.F("temperature", bundle.Current.Temperature.Current),
		ports.F("daily_buckets", len(bundle.Daily)))
	return bundle, nil
}

func (uc *UseCase) getWeatherWithCache(ctx context.Context, request Request) (*Bundle, error) {
	if !uc.options.EnableCache {
		return uc.getWeatherFromProvider(ctx, request)
	}

	cacheKey := fmt.Sprintf("weather:%s:%d", request.City, request.HorizonDays)
	cached, err := uc.cache.Get(ctx, cacheKey)
	if err == nil && cached != nil {
		uc.metrics.RecordCacheHit()
		uc.logger.Debug("Weather found in cache", ports.F("key", cacheKey))
		return cached, nil
	}
	uc.metrics.RecordCacheMiss()

	bundle, err := uc.getWeatherFromProvider(ctx, request)
	if err != nil {
		return nil, err
	}

	if cacheErr := uc.cache.Set(ctx, cacheKey, bundle, uc.options.CacheTTL); cacheErr != nil {
		uc.logger.Warn("Failed to cache weather bundle",
			ports.F("key", cacheKey),
			ports.F("error", cacheErr))
	}
	return bundle, nil
}

func (uc *UseCase) getWeatherFromProvider(ctx context.Context, request Request) (*Bundle, error) {
	started := time.Now()

	current, err := uc.provider.FetchCurrent(ctx, request.City)
	if err != nil {
		uc.metrics.RecordProviderCall(uc.provider.ProviderName(), false)
		return nil, err
	}
	if err := current.IsValid(); err != nil {
		uc.metrics.RecordProviderCall(uc.provider.ProviderName(), false)
		return nil, errors.NewMalformedResponseError("invalid weather data from provider: " + err.Error())
	}

	entries, err := uc.provider.FetchForecast(ctx, request.City, request.HorizonDays)
	if err != nil {
		uc.metrics.RecordProviderCall(uc.provider.ProviderName(), false)
		return nil, err
	}

	uc.metrics.RecordProviderCall(uc.provider.ProviderName(), true)
	uc.metrics.RecordProviderLatency(uc.provider.ProviderName(), time.Since(started))

	return &Bundle{
		Current:  current,
		Forecast: entries,
		Daily:    AggregateDaily(entries, request.HorizonDays),
	}, nil
}

// RequestWeather drives a full state transition: loading on, fetch, then
// either the bundle or the failure message is applied. The generation
// issued by Begin guards against a superseded response arriving late.
func (uc *UseCase) RequestWeather(ctx context.Context, city string, days int) State {
	gen := uc.store.Begin()
	requestID := uuid.NewString()

	uc.logger.Info("Weather request started",
		ports.F("request_id", requestID),
		ports.F("city", city),
		ports.F("days", days))

	bundle, err := uc.GetWeather(ctx, Request{City: city, HorizonDays: days})
	if err != nil {
		applied := uc.store.ApplyFailure(gen, failureMessage(err))
		uc.logger.Warn("Weather request failed",
			ports.F("request_id", requestID),
			ports.F("applied", applied),
			ports.F("error", err))
		return uc.store.Snapshot()
	}

	if applied := uc.store.ApplySuccess(gen, bundle); !applied {
		uc.logger.Debug("Dropped superseded weather response",
			ports.F("request_id", requestID),
			ports.F("generation", gen))
	}
	return uc.store.Snapshot()
}

// RequestSuggestions resolves city suggestions for a partial query. It
// never fails hard: short queries and provider errors both leave the state
// with an empty suggestion list and no error.
func (uc *UseCase) RequestSuggestions(ctx context.Context, query string) []string {
	if !validation.IsSuggestibleQuery(query) {
		uc.store.ClearSuggestions()
		return []string{}
	}

	suggestions, err := uc.provider.FetchSuggestions(ctx, query)
	if err != nil || suggestions == nil {
		if err != nil {
			uc.logger.Warn("Suggestion lookup failed, returning empty list",
				ports.F("query", query),
				ports.F("error", err))
		}
		suggestions = []string{}
	}

	uc.store.SetSuggestions(suggestions)
	return suggestions
}

// failureMessage flattens an error into the plain string the state carries.
func failureMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
