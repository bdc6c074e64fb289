package api

import (
	"net/http"
	"strconv"

	"log/slog"

	"github.com/gin-gonic/gin"

	"auraweather.app/internal/core/weather"
	"auraweather.app/pkg/errors"
)

// getWeather handles GET /api/weather?city=...&days=... requests,
// returning the normalized bundle without touching the application state.
func (s *HTTPServer) getWeather(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		s.handleError(c, errors.NewValidationError("city parameter is required"))
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "3"))
	if err != nil {
		s.handleError(c, errors.NewValidationError("days parameter must be an integer"))
		return
	}

	slog.Debug("Getting weather", "city", city, "days", days)

	bundle, err := s.weatherUseCase.GetWeather(c.Request.Context(), weather.Request{
		City:        city,
		HorizonDays: days,
	})
	if err != nil {
		slog.Error("Weather use case error", "error", err, "city", city)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// searchCities handles GET /api/search?q=... requests. Short queries and
// provider failures both resolve to an empty list, never an error.
func (s *HTTPServer) searchCities(c *gin.Context) {
	query := c.Query("q")
	suggestions := s.weatherUseCase.RequestSuggestions(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// getState handles GET /api/state requests
func (s *HTTPServer) getState(c *gin.Context) {
	c.JSON(http.StatusOK, s.weatherUseCase.Snapshot())
}

// SetCityRequest is the body of POST /api/state/city
type SetCityRequest struct {
	City string `json:"city" binding:"required"`
}

// setCity handles POST /api/state/city requests
func (s *HTTPServer) setCity(c *gin.Context) {
	var req SetCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("city is required"))
		return
	}

	state := s.weatherUseCase.SetCity(c.Request.Context(), req.City)
	c.JSON(http.StatusOK, state)
}

// SetHorizonRequest is the body of POST /api/state/horizon
type SetHorizonRequest struct {
	Days int `json:"days" binding:"required"`
}

// setHorizon handles POST /api/state/horizon requests
func (s *HTTPServer) setHorizon(c *gin.Context) {
	var req SetHorizonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("days is required"))
		return
	}

	state := s.weatherUseCase.SetHorizon(c.Request.Context(), req.Days)
	c.JSON(http.StatusOK, state)
}
