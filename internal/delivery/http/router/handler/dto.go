// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"rental/internal/domain/entity"

	"github.com/google/uuid"
)

// accountView is the wire shape of an account. The password hash never leaves
// the server.
type accountView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func newAccountView(account *entity.Account) accountView {
	return accountView{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role.String(),
		CreatedAt: account.CreatedAt,
	}
}

type carView struct {
	ID          uuid.UUID `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	PricePerDay float64   `json:"pricePerDay"`
	Seats       int       `json:"seats"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newCarView(car *entity.Car) carView {
	return carView{
		ID:          car.ID,
		Make:        car.Make,
		Model:       car.Model,
		Year:        car.Year,
		PricePerDay: car.PricePerDay,
		Seats:       car.Seats,
		Image:       car.ImageURL,
		CreatedAt:   car.CreatedAt,
	}
}

func newCarViews(cars []*entity.Car) []carView {
	views := make([]carView, 0, len(cars))
	for _, car := range cars {
		views = append(views, newCarView(car))
	}

	return views
}

type bookingView struct {
	ID         uuid.UUID `json:"id"`
	CarID      uuid.UUID `json:"carId"`
	Car        *carView  `json:"car,omitempty"`
	PickupDate time.Time `json:"pickupDate"`
	ReturnDate time.Time `json:"returnDate"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newBookingView(booking *entity.Booking) bookingView {
	view := bookingView{
		ID:         booking.ID,
		CarID:      booking.CarID,
		PickupDate: booking.PickupDate,
		ReturnDate: booking.ReturnDate,
		Name:       booking.RenterName,
		Phone:      booking.RenterPhone,
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
	}
	if booking.Car != nil {
		car := newCarView(booking.Car)
		view.Car = &car
	}

	return view
}

func newBookingViews(bookings []*entity.Booking) []bookingView {
	views := make([]bookingView, 0, len(bookings))
	for _, booking := range bookings {
		views = append(views, newBookingView(booking))
	}

	return views
}

// authView pairs the issued token with the account it identifies.
type authView struct {
	Token string      `json:"token"`
	User  accountView `json:"user"`
}
