// Package database persists the whitelisted application state: favorite
// cities and the last active city/horizon pair. Transient weather data is
// never stored; it is re-fetched on load.
package database

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"auraweather.app/internal/core/favorites"
	"auraweather.app/pkg/errors"
)

// FavoriteCityModel represents the database model for favorite cities.
// NameKey holds the case-folded name so membership stays case-insensitive
// at the storage level too.
type FavoriteCityModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	NameKey   string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (FavoriteCityModel) TableName() string {
	return "favorite_cities"
}

// FavoritesRepository implements the favorites repository port using GORM
type FavoritesRepository struct {
	db *gorm.DB
}

// NewFavoritesRepository creates a new favorites repository
func NewFavoritesRepository(db *gorm.DB) *FavoritesRepository {
	return &FavoritesRepository{db: db}
}

// List returns favorite city names in insertion order
func (r *FavoritesRepository) List(ctx context.Context) ([]string, error) {
	var models []FavoriteCityModel
	result := r.db.WithContext(ctx).Order("id asc").Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list favorite cities", result.Error)
	}

	cities := make([]string, 0, len(models))
	for _, m := range models {
		cities = append(cities, m.Name)
	}
	return cities, nil
}

// Add inserts a favorite city, a no-op when an equivalent entry exists
func (r *FavoritesRepository) Add(ctx context.Context, city string) error {
	model := FavoriteCityModel{
		Name:    city,
		NameKey: strings.ToLower(city),
	}

	result := r.db.WithContext(ctx).
		Where(FavoriteCityModel{NameKey: model.NameKey}).
		FirstOrCreate(&model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to add favorite city", result.Error)
	}
	return nil
}

// Remove deletes a favorite city by case-insensitive name
func (r *FavoritesRepository) Remove(ctx context.Context, city string) error {
	result := r.db.WithContext(ctx).
		Where("name_key = ?", strings.ToLower(city)).
		Delete(&FavoriteCityModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to remove favorite city", result.Error)
	}
	return nil
}

var _ favorites.Repository = (*FavoritesRepository)(nil)
