package impl

import (
	"context"
	"log/slog"
	"strings"

	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/repository"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fleetService implements the FleetUsecase interface.
type fleetService struct {
	carRepo repository.CarRepository
	logger  *slog.Logger
}

// FleetServiceParams holds dependencies for fleetService, injected by Fx.
type FleetServiceParams struct {
	fx.In

	CarRepo repository.CarRepository
	Logger  *slog.Logger
}

// NewFleetService is the constructor for fleetService.
func NewFleetService(params FleetServiceParams) usecase.FleetUsecase {
	return &fleetService{
		carRepo: params.CarRepo,
		logger:  params.Logger,
	}
}

// ListCars returns fleet cars matching the filter, newest first.
func (srv *fleetService) ListCars(ctx context.Context, filter repository.CarFilter) ([]*entity.Car, error) {
	cars, err := srv.carRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cars")
	}

	return cars, nil
}

// GetCar retrieves a single car.
func (srv *fleetService) GetCar(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	car, err := srv.carRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return nil, domainerrors.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to load car")
	}

	return car, nil
}

// AddCar adds a car to the fleet.
func (srv *fleetService) AddCar(ctx context.Context, input *usecase.CarInput) (*entity.Car, error) {
	if err := validateCar(input); err != nil {
		return nil, err
	}

	car := carFromInput(input)
	if err := srv.carRepo.Create(ctx, car); err != nil {
		return nil, errors.Wrap(err, "failed to create car")
	}

	srv.logger.Info("Car added to fleet",
		slog.Any("carID", car.ID), slog.String("make", car.Make), slog.String("model", car.Model))

	return car, nil
}

// UpdateCar modifies an existing car.
func (srv *fleetService) UpdateCar(ctx context.Context, id uuid.UUID, input *usecase.CarInput) (*entity.Car, error) {
	if err := validateCar(input); err != nil {
		return nil, err
	}

	car := carFromInput(input)
	car.ID = id

	if err := srv.carRepo.Update(ctx, car); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return nil, domainerrors.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to update car")
	}

	srv.logger.Info("Car updated", slog.Any("carID", car.ID))

	return srv.GetCar(ctx, id)
}

// SeedFleet replaces the whole fleet with the given cars.
func (srv *fleetService) SeedFleet(ctx context.Context, cars []*entity.Car) error {
	if err := srv.carRepo.ReplaceAll(ctx, cars); err != nil {
		return errors.Wrap(err, "failed to seed fleet")
	}

	srv.logger.Info("Fleet seeded", slog.Int("cars", len(cars)))

	return nil
}

func validateCar(input *usecase.CarInput) error {
	if strings.TrimSpace(input.Make) == "" || strings.TrimSpace(input.Model) == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Make and model are required")
	}
	if input.PricePerDay <= 0 {
		return domainerrors.ErrValidationFailed.WithMessage("Price per day must be greater than zero")
	}

	return nil
}

func carFromInput(input *usecase.CarInput) *entity.Car {
	return &entity.Car{
		Make:        strings.TrimSpace(input.Make),
		Model:       strings.TrimSpace(input.Model),
		Year:        input.Year,
		PricePerDay: input.PricePerDay,
		Seats:       input.Seats,
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}
}
