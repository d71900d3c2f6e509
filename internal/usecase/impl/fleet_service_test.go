package impl

import (
	"context"
	"testing"

	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/repository"
	"rental/internal/infra/persistence/memory"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFleetService(t *testing.T, store *memory.Store) usecase.FleetUsecase {
	t.Helper()

	return NewFleetService(FleetServiceParams{
		CarRepo: store.CarRepo(),
		Logger:  testLogger(),
	})
}

func TestFleetService_ListCars(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestFleetService(t, store)

	_, err := svc.AddCar(ctx, &usecase.CarInput{Make: "Toyota", Model: "Camry", Year: 2021, PricePerDay: 45, Seats: 5})
	require.NoError(t, err)
	_, err = svc.AddCar(ctx, &usecase.CarInput{Make: "Tesla", Model: "Model 3", Year: 2022, PricePerDay: 120, Seats: 5})
	require.NoError(t, err)

	t.Run("no filter returns everything newest first", func(t *testing.T) {
		cars, err := svc.ListCars(ctx, repository.CarFilter{})
		require.NoError(t, err)
		require.Len(t, cars, 2)
		assert.Equal(t, "Tesla", cars[0].Make)
	})

	t.Run("filters by make substring, case-insensitive", func(t *testing.T) {
		cars, err := svc.ListCars(ctx, repository.CarFilter{Make: "tes"})
		require.NoError(t, err)
		require.Len(t, cars, 1)
		assert.Equal(t, "Tesla", cars[0].Make)
	})

	t.Run("filters by max daily price", func(t *testing.T) {
		cars, err := svc.ListCars(ctx, repository.CarFilter{MaxPrice: 50})
		require.NoError(t, err)
		require.Len(t, cars, 1)
		assert.Equal(t, "Toyota", cars[0].Make)
	})
}

func TestFleetService_GetCar(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestFleetService(t, store)

	created, err := svc.AddCar(ctx, &usecase.CarInput{Make: "Honda", Model: "Civic", Year: 2020, PricePerDay: 40, Seats: 5})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		car, err := svc.GetCar(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Civic", car.Model)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetCar(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrCarNotFound)
	})
}

func TestFleetService_AddCar(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestFleetService(t, store)

	t.Run("rejects missing make or model", func(t *testing.T) {
		_, err := svc.AddCar(ctx, &usecase.CarInput{Make: " ", Model: "Civic", PricePerDay: 40})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("rejects non-positive daily price", func(t *testing.T) {
		_, err := svc.AddCar(ctx, &usecase.CarInput{Make: "Honda", Model: "Civic", PricePerDay: 0})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("assigns an id", func(t *testing.T) {
		car, err := svc.AddCar(ctx, &usecase.CarInput{Make: "Honda", Model: "Civic", Year: 2020, PricePerDay: 40, Seats: 5})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, car.ID)
	})
}

func TestFleetService_UpdateCar(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestFleetService(t, store)

	created, err := svc.AddCar(ctx, &usecase.CarInput{Make: "Ford", Model: "Escape", Year: 2019, PricePerDay: 55, Seats: 5})
	require.NoError(t, err)

	t.Run("updates fields in place", func(t *testing.T) {
		updated, err := svc.UpdateCar(ctx, created.ID, &usecase.CarInput{
			Make: "Ford", Model: "Escape", Year: 2019, PricePerDay: 60, Seats: 5,
		})
		require.NoError(t, err)
		assert.InDelta(t, 60, updated.PricePerDay, 0.001)
		assert.Equal(t, created.ID, updated.ID)
	})

	t.Run("unknown car", func(t *testing.T) {
		_, err := svc.UpdateCar(ctx, uuid.New(), &usecase.CarInput{Make: "Ford", Model: "Escape", PricePerDay: 60})
		assert.ErrorIs(t, err, domainerrors.ErrCarNotFound)
	})
}

func TestFleetService_SeedFleet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore()
	svc := newTestFleetService(t, store)

	_, err := svc.AddCar(ctx, &usecase.CarInput{Make: "Old", Model: "Car", PricePerDay: 10})
	require.NoError(t, err)

	err = svc.SeedFleet(ctx, []*entity.Car{
		{Make: "Toyota", Model: "Camry", Year: 2021, PricePerDay: 45, Seats: 5},
		{Make: "Honda", Model: "Civic", Year: 2020, PricePerDay: 40, Seats: 5},
	})
	require.NoError(t, err)

	cars, err := svc.ListCars(ctx, repository.CarFilter{})
	require.NoError(t, err)
	require.Len(t, cars, 2)
	for _, car := range cars {
		assert.NotEqual(t, "Old", car.Make)
	}
}
