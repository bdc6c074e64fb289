package favorites

import (
	"context"

	"auraweather.app/internal/ports"
	"auraweather.app/pkg/errors"
	"auraweather.app/pkg/validation"
)

// Repository persists favorite cities. Implementations store the
// case-folded name alongside the display casing so that membership checks
// stay case-insensitive.
type Repository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, city string) error
	Remove(ctx context.Context, city string) error
}

type UseCase struct {
	repo   Repository
	logger ports.Logger
}

func NewUseCase(repo Repository, logger ports.Logger) (*UseCase, error) {
	if repo == nil {
		return nil, errors.NewValidationError("favorites repository is required")
	}
	if logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	return &UseCase{repo: repo, logger: logger}, nil
}

// List returns the favorite cities in insertion order.
func (uc *UseCase) List(ctx context.Context) ([]string, error) {
	cities, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []string{}
	}
	return cities, nil
}

// Toggle flips a city's membership and reports whether it is now a
// favorite.
func (uc *UseCase) Toggle(ctx context.Context, city string) (bool, error) {
	trimmed, ok := validation.TrimAndValidate(city)
	if !ok {
		return false, errors.NewValidationError("city cannot be empty")
	}

	set, err := uc.loadSet(ctx)
	if err != nil {
		return false, err
	}

	if set.Contains(trimmed) {
		if err := uc.repo.Remove(ctx, trimmed); err != nil {
			return true, err
		}
		uc.logger.Debug("Removed favorite city", ports.F("city", trimmed))
		return false, nil
	}

	if err := uc.repo.Add(ctx, trimmed); err != nil {
		return false, err
	}
	uc.logger.Debug("Added favorite city", ports.F("city", trimmed))
	return true, nil
}

// Remove deletes a city from the favorites, a no-op when absent.
func (uc *UseCase) Remove(ctx context.Context, city string) error {
	trimmed, ok := validation.TrimAndValidate(city)
	if !ok {
		return errors.NewValidationError("city cannot be empty")
	}

	set, err := uc.loadSet(ctx)
	if err != nil {
		return err
	}
	if !set.Contains(trimmed) {
		return nil
	}

	if err := uc.repo.Remove(ctx, trimmed); err != nil {
		return err
	}
	uc.logger.Debug("Removed favorite city", ports.F("city", trimmed))
	return nil
}

func (uc *UseCase) loadSet(ctx context.Context) (*Set, error) {
	cities, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewSet(cities...), nil
}
