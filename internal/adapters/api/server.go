// Package api exposes the weather core over HTTP to its UI consumer.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"auraweather.app/internal/core/weather"
	"auraweather.app/internal/ports"
	"auraweather.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// Use case interfaces that the HTTP adapter depends on

type WeatherUseCase interface {
	GetWeather(ctx context.Context, request weather.Request) (*weather.Bundle, error)
	RequestWeather(ctx context.Context, city string, days int) weather.State
	RequestSuggestions(ctx context.Context, query string) []string
	SetCity(ctx context.Context, city string) weather.State
	SetHorizon(ctx context.Context, days int) weather.State
	Snapshot() weather.State
}

type FavoritesUseCase interface {
	List(ctx context.Context) ([]string, error)
	Toggle(ctx context.Context, city string) (bool, error)
	Remove(ctx context.Context, city string) error
}

// HTTPServer implements the HTTP surface using Gin
type HTTPServer struct {
	router           *gin.Engine
	config           ServerConfig
	weatherUseCase   WeatherUseCase
	favoritesUseCase FavoritesUseCase
	healthChecker    ports.SystemHealthChecker
	httpServer       *http.Server
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	WeatherUseCase      WeatherUseCase
	FavoritesUseCase    FavoritesUseCase
	SystemHealthChecker ports.SystemHealthChecker
}

// Validate checks that all required options are present
func (o *ServerOptions) Validate() error {
	if o.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if o.FavoritesUseCase == nil {
		return errors.NewValidationError("favorites use case is required")
	}
	if o.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	if o.Config.Port < 1 || o.Config.Port > 65535 {
		return errors.NewValidationError("server port must be between 1 and 65535")
	}
	return nil
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(opts ServerOptions) (*HTTPServer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.Default()

	server := &HTTPServer{
		router:           router,
		config:           opts.Config,
		weatherUseCase:   opts.WeatherUseCase,
		favoritesUseCase: opts.FavoritesUseCase,
		healthChecker:    opts.SystemHealthChecker,
	}

	server.setupRoutes()
	return server, nil
}

func (s *HTTPServer) setupRoutes() {
	s.router.GET("/health", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := s.router.Group("/api")
	{
		apiGroup.GET("/weather", s.getWeather)
		apiGroup.GET("/search", s.searchCities)
		apiGroup.GET("/state", s.getState)
		apiGroup.POST("/state/city", s.setCity)
		apiGroup.POST("/state/horizon", s.setHorizon)
		apiGroup.GET("/favorites", s.listFavorites)
		apiGroup.POST("/favorites/toggle", s.toggleFavorite)
		apiGroup.DELETE("/favorites/:city", s.removeFavorite)
	}
}

// Router exposes the underlying router for tests
func (s *HTTPServer) Router() *gin.Engine {
	return s.router
}

// Start runs the HTTP server until the context is canceled
func (s *HTTPServer) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		return nil
	}
}

// Shutdown stops the HTTP server gracefully
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *HTTPServer) health(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	status := "ok"
	code := http.StatusOK
	for _, component := range components {
		if component.Status != "healthy" {
			status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, gin.H{
		"status":     status,
		"components": components,
	})
}
