package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auraweather.app/internal/config"
)

func demoConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   ":memory:",
		},
		Weather: config.WeatherConfig{
			Mode:            config.ProviderModeDemo,
			NativeHorizon:   3,
			AllowedHorizons: []int{3, 5, 7},
			EnableCache:     true,
			CacheTTLMinutes: 10,
			DemoDelayMs:     0,
		},
		Cache: config.CacheConfig{Type: config.CacheTypeMemory},
		App: config.AppConfig{
			DefaultCity:        "New Delhi",
			DefaultHorizonDays: 3,
			LogLevel:           "info",
		},
	}
}

func TestNewDependencyContainer_DemoMode(t *testing.T) {
	container, err := NewDependencyContainer(demoConfig())
	require.NoError(t, err)

	require.NotNil(t, container.Store)
	require.NotNil(t, container.WeatherUseCase)
	require.NotNil(t, container.FavoritesUseCase)
	require.NotNil(t, container.HealthChecker)

	snapshot := container.Store.Snapshot()
	assert.Equal(t, "New Delhi", snapshot.ActiveCity)
	assert.Equal(t, 3, snapshot.HorizonDays)

	results := container.HealthChecker.CheckAll(context.Background())
	assert.Equal(t, "healthy", results["database"].Status)
	assert.Equal(t, "healthy", results["weatherProvider"].Status)
}

func TestNewApplication_WiresInitialState(t *testing.T) {
	app, err := NewApplication(demoConfig())
	require.NoError(t, err)

	snapshot := app.container.Store.Snapshot()
	assert.Equal(t, "New Delhi", snapshot.ActiveCity)
	assert.Equal(t, 3, snapshot.HorizonDays)
}
