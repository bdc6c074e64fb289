package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"auraweather.app/internal/core/weather"
	"auraweather.app/pkg/errors"
)

// preferencesRowID pins the singleton preferences row.
const preferencesRowID = 1

// PreferencesModel represents the database model for the persisted
// city/horizon pair
type PreferencesModel struct {
	ID          uint   `gorm:"primaryKey"`
	ActiveCity  string `gorm:"not null"`
	HorizonDays int    `gorm:"not null"`
	UpdatedAt   time.Time
}

func (PreferencesModel) TableName() string {
	return "preferences"
}

// PreferencesRepository implements the preferences repository port using GORM
type PreferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository creates a new preferences repository
func NewPreferencesRepository(db *gorm.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// Load retrieves the persisted preferences
func (r *PreferencesRepository) Load(ctx context.Context) (*weather.Preferences, error) {
	var model PreferencesModel
	result := r.db.WithContext(ctx).First(&model, preferencesRowID)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("no preferences saved yet")
		}
		return nil, errors.NewDatabaseError("failed to load preferences", result.Error)
	}

	return &weather.Preferences{
		ActiveCity:  model.ActiveCity,
		HorizonDays: model.HorizonDays,
	}, nil
}

// Save upserts the persisted preferences
func (r *PreferencesRepository) Save(ctx context.Context, prefs weather.Preferences) error {
	model := PreferencesModel{
		ID:          preferencesRowID,
		ActiveCity:  prefs.ActiveCity,
		HorizonDays: prefs.HorizonDays,
	}

	result := r.db.WithContext(ctx).Save(&model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to save preferences", result.Error)
	}
	return nil
}

var _ weather.PreferencesRepository = (*PreferencesRepository)(nil)
