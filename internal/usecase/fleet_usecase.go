package usecase

import (
	"context"

	"rental/internal/domain/entity"
	"rental/internal/domain/repository"

	"github.com/google/uuid"
)

// CarInput defines the data required to add or update a fleet car.
type CarInput struct {
	Make        string
	Model       string
	Year        int
	PricePerDay float64
	Seats       int
	ImageURL    string
}

// FleetUsecase covers the vehicle catalog: public reads and admin-gated writes.
type FleetUsecase interface {
	// ListCars returns fleet cars matching the filter, newest first.
	ListCars(ctx context.Context, filter repository.CarFilter) ([]*entity.Car, error)

	// GetCar retrieves a single car.
	GetCar(ctx context.Context, id uuid.UUID) (*entity.Car, error)

	// AddCar adds a car to the fleet.
	AddCar(ctx context.Context, input *CarInput) (*entity.Car, error)

	// UpdateCar modifies an existing car.
	UpdateCar(ctx context.Context, id uuid.UUID, input *CarInput) (*entity.Car, error)

	// SeedFleet replaces the whole fleet with the given cars.
	SeedFleet(ctx context.Context, cars []*entity.Car) error
}
