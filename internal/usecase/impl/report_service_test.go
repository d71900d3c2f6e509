package impl

import (
	"context"
	"testing"
	"time"

	"rental/internal/domain/entity"
	"rental/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Stats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore()
	svc := NewReportService(ReportServiceParams{
		AccountRepo: store.AccountRepo(),
		CarRepo:     store.CarRepo(),
		BookingRepo: store.BookingRepo(),
		Logger:      testLogger(),
	})

	t.Run("empty store", func(t *testing.T) {
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Accounts)
		assert.Zero(t, stats.Cars)
		assert.Zero(t, stats.Bookings)
	})

	require.NoError(t, store.AccountRepo().Create(ctx, &entity.Account{
		Name: "Alice Wang", Email: "alice@example.com", PasswordHash: "x", Role: entity.RoleCustomer,
	}))

	car := &entity.Car{Make: "Toyota", Model: "Camry", Year: 2021, PricePerDay: 45, Seats: 5}
	require.NoError(t, store.CarRepo().Create(ctx, car))

	require.NoError(t, store.BookingRepo().Create(ctx, &entity.Booking{
		AccountID:  uuid.New(),
		CarID:      car.ID,
		PickupDate: time.Now(),
		ReturnDate: time.Now().Add(48 * time.Hour),
		TotalPrice: 90,
	}))

	t.Run("counts all record kinds", func(t *testing.T) {
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, stats.Accounts)
		assert.EqualValues(t, 1, stats.Cars)
		assert.EqualValues(t, 1, stats.Bookings)
	})
}
