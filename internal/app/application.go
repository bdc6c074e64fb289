package app

import (
	"context"

	"log/slog"

	"auraweather.app/internal/adapters/api"
	"auraweather.app/internal/config"
)

// Application owns the dependency container and the HTTP surface.
type Application struct {
	config    *config.Config
	container *DependencyContainer
	server    *api.HTTPServer
}

func NewApplication(cfg *config.Config) (*Application, error) {
	container, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, err
	}

	server, err := api.NewHTTPServer(api.ServerOptions{
		Config:              api.ServerConfig{Port: cfg.Server.Port},
		WeatherUseCase:      container.WeatherUseCase,
		FavoritesUseCase:    container.FavoritesUseCase,
		SystemHealthChecker: container.HealthChecker,
	})
	if err != nil {
		return nil, err
	}

	return &Application{
		config:    cfg,
		container: container,
		server:    server,
	}, nil
}

// Start restores persisted preferences, kicks off the initial weather
// fetch for the active city, and serves HTTP until ctx is cancelled or
// the listener fails.
func (a *Application) Start(ctx context.Context) error {
	a.container.WeatherUseCase.RestorePreferences(ctx)

	snapshot := a.container.Store.Snapshot()
	slog.Info("Starting initial weather fetch",
		"city", snapshot.ActiveCity,
		"horizonDays", snapshot.HorizonDays)
	a.container.WeatherUseCase.RequestWeather(ctx, snapshot.ActiveCity, snapshot.HorizonDays)

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	return a.server.Start(ctx)
}

// Shutdown stops the HTTP server gracefully.
func (a *Application) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
