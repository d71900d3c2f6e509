package repository

import (
	"context"

	"rental/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingRepository defines the standard operations for booking persistence.
// Bookings are insert-only; no update or delete operations exist.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *entity.Booking) error

	// ListByAccount returns the account's bookings, newest first, with car snapshots.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Booking, error)

	// ListAll returns every booking, newest first, with car snapshots.
	ListAll(ctx context.Context) ([]*entity.Booking, error)

	// Count returns the total number of bookings.
	Count(ctx context.Context) (int64, error)
}
