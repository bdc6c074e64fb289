package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"

	"auraweather.app/pkg/errors"
)

// FavoritesResponse lists favorite cities in insertion order
type FavoritesResponse struct {
	Cities []string `json:"cities"`
}

// ToggleFavoriteRequest is the body of POST /api/favorites/toggle
type ToggleFavoriteRequest struct {
	City string `json:"city" binding:"required"`
}

// listFavorites handles GET /api/favorites requests
func (s *HTTPServer) listFavorites(c *gin.Context) {
	cities, err := s.favoritesUseCase.List(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list favorites", "error", err)
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, FavoritesResponse{Cities: cities})
}

// toggleFavorite handles POST /api/favorites/toggle requests
func (s *HTTPServer) toggleFavorite(c *gin.Context) {
	var req ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("city is required"))
		return
	}

	favored, err := s.favoritesUseCase.Toggle(c.Request.Context(), req.City)
	if err != nil {
		slog.Error("Failed to toggle favorite", "error", err, "city", req.City)
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"city": req.City, "favorite": favored})
}

// removeFavorite handles DELETE /api/favorites/:city requests
func (s *HTTPServer) removeFavorite(c *gin.Context) {
	city := c.Param("city")

	if err := s.favoritesUseCase.Remove(c.Request.Context(), city); err != nil {
		slog.Error("Failed to remove favorite", "error", err, "city", city)
		s.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
