package usecase

import (
	"context"
	"time"

	"rental/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookingInput defines the data required to create a booking. The total
// price is always derived server-side; there is deliberately no field for it.
type CreateBookingInput struct {
	AccountID   uuid.UUID
	CarID       uuid.UUID
	PickupDate  time.Time
	ReturnDate  time.Time
	RenterName  string
	RenterPhone string
}

// BookingUsecase covers booking creation and the two listing views.
type BookingUsecase interface {
	// Create books a car for the account over the given range, deriving the
	// total price from the car's daily rate with ceiling-day billing.
	Create(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error)

	// ListOwn returns the account's bookings, newest first.
	ListOwn(ctx context.Context, accountID uuid.UUID) ([]*entity.Booking, error)

	// ListAll returns every booking. Admin-gated at the delivery layer.
	ListAll(ctx context.Context) ([]*entity.Booking, error)
}
