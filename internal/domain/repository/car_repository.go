package repository

import (
	"context"
	"errors"

	"rental/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCarNotFound is returned when no car matches the lookup.
var ErrCarNotFound = errors.New("car not found")

// CarFilter narrows a fleet listing. Zero values mean "no constraint".
type CarFilter struct {
	Make     string  // Case-insensitive substring match on the manufacturer.
	MaxPrice float64 // Upper bound on the daily rate.
}

// CarRepository defines the standard operations for fleet persistence.
type CarRepository interface {
	// List returns fleet cars matching the filter, newest first.
	List(ctx context.Context, filter CarFilter) ([]*entity.Car, error)

	// FindByID retrieves a single car by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error)

	// Create persists a new car.
	Create(ctx context.Context, car *entity.Car) error

	// Update modifies an existing car in place.
	Update(ctx context.Context, car *entity.Car) error

	// ReplaceAll atomically swaps the whole fleet for the given cars. Used by seeding.
	ReplaceAll(ctx context.Context, cars []*entity.Car) error

	// Count returns the total number of cars.
	Count(ctx context.Context) (int64, error)
}
