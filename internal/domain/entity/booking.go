// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// millisPerDay is the billing unit for rentals. Any started day is charged in full.
const millisPerDay = 24 * 60 * 60 * 1000

// ErrInvalidDateRange is returned when a booking's return date is not after its pickup date.
type ErrInvalidDateRange struct{}

func (ErrInvalidDateRange) Error() string {
	return "return date must be after pickup date"
}

// Booking represents a confirmed rental of a car over a date range.
// Bookings are immutable once created; there is no cancel or update transition.
type Booking struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the booking.
	AccountID   uuid.UUID // The account that owns this booking.
	CarID       uuid.UUID // The rented car.
	Car         *Car      // Snapshot of the rented car, populated on reads.
	PickupDate  time.Time // Start of the rental period.
	ReturnDate  time.Time // End of the rental period. Strictly after PickupDate.
	RenterName  string    // Name supplied by the renter for the handover.
	RenterPhone string    // Contact phone supplied by the renter.
	TotalPrice  float64   // Derived charge. Computed server-side, never client-supplied.
	CreatedAt   time.Time // Timestamp of when this booking was created.
}

// QuoteTotalPrice derives the charge for renting a car at the given daily rate
// over [pickup, ret). The chargeable day count is the ceiling of the millisecond
// difference over one day, so any partial day is billed as a full day.
func QuoteTotalPrice(pricePerDay float64, pickup, ret time.Time) (float64, error) {
	if !ret.After(pickup) {
		return 0, ErrInvalidDateRange{}
	}

	days := math.Ceil(float64(ret.Sub(pickup).Milliseconds()) / float64(millisPerDay))

	return days * pricePerDay, nil
}
