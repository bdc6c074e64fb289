package app

import (
	"fmt"
	"time"

	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"auraweather.app/internal/adapters/database"
	"auraweather.app/internal/adapters/external"
	"auraweather.app/internal/adapters/infrastructure"
	"auraweather.app/internal/config"
	"auraweather.app/internal/core/favorites"
	"auraweather.app/internal/core/weather"
	"auraweather.app/internal/ports"
)

// DependencyContainer wires adapters into the core use cases.
type DependencyContainer struct {
	config *config.Config
	db     *gorm.DB

	Store            *weather.Store
	WeatherUseCase   *weather.UseCase
	FavoritesUseCase *favorites.UseCase
	HealthChecker    ports.SystemHealthChecker
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", c.config.Database.Driver)

	var dialector gorm.Dialector
	switch c.config.Database.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(c.config.Database.GetDSN())
	default:
		dialector = sqlite.Open(c.config.Database.Path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&database.FavoriteCityModel{},
		&database.PreferencesModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializeUseCases() error {
	logger := &infrastructure.SlogLoggerAdapter{}
	metrics := infrastructure.NewPrometheusMetricsCollector()

	cacheFactory := external.NewCacheProviderFactory()
	cacheBackend, err := cacheFactory.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	slog.Info("Cache provider initialized", "type", c.config.Cache.Type.String())

	provider, err := c.buildProvider(logger)
	if err != nil {
		return err
	}
	slog.Info("Weather provider initialized",
		"mode", c.config.Weather.Mode.String(),
		"provider", provider.ProviderName())

	c.Store = weather.NewStore(c.config.App.DefaultCity, c.config.App.DefaultHorizonDays)

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider:    provider,
		Cache:       external.NewWeatherCacheAdapter(cacheBackend),
		Store:       c.Store,
		Preferences: database.NewPreferencesRepository(c.db),
		Options: weather.Options{
			AllowedHorizons: c.config.Weather.AllowedHorizons,
			EnableCache:     c.config.Weather.EnableCache,
			CacheTTL:        time.Duration(c.config.Weather.CacheTTLMinutes) * time.Minute,
		},
		Logger:  logger,
		Metrics: metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	c.WeatherUseCase = weatherUseCase

	favoritesUseCase, err := favorites.NewUseCase(database.NewFavoritesRepository(c.db), logger)
	if err != nil {
		return fmt.Errorf("create favorites use case: %w", err)
	}
	c.FavoritesUseCase = favoritesUseCase

	c.HealthChecker = infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: infrastructure.NewDatabaseHealthChecker(c.db),
		ProviderChecker: infrastructure.NewProviderHealthChecker(provider),
	})

	return nil
}

func (c *DependencyContainer) buildProvider(logger ports.Logger) (weather.Provider, error) {
	if c.config.Weather.Mode == config.ProviderModeDemo {
		return external.NewDemoProvider(external.DemoProviderParams{
			Delay:  time.Duration(c.config.Weather.DemoDelayMs) * time.Millisecond,
			Logger: logger,
		}), nil
	}

	primary := external.NewWeatherAPIProvider(external.WeatherAPIProviderParams{
		APIKey:  c.config.Weather.APIKey,
		BaseURL: c.config.Weather.BaseURL,
		Logger:  logger,
	})
	secondary := external.NewOpenMeteoProvider(external.OpenMeteoProviderParams{
		BaseURL: c.config.Weather.OpenMeteoBaseURL,
		Logger:  logger,
	})

	manager, err := external.NewWeatherProviderManager(external.ProviderManagerParams{
		Primary:       primary,
		Secondary:     secondary,
		NativeHorizon: c.config.Weather.NativeHorizon,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create provider manager: %w", err)
	}

	var provider weather.Provider = manager
	if c.config.Weather.RateLimitRPS > 0 {
		provider = external.NewRateLimitedProvider(provider,
			c.config.Weather.RateLimitRPS, c.config.Weather.RateLimitBurst)
		slog.Info("Weather provider rate limiting enabled",
			"rps", c.config.Weather.RateLimitRPS,
			"burst", c.config.Weather.RateLimitBurst)
	}
	return provider, nil
}
