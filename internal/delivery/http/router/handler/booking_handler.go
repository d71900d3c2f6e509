package handler

import (
	"log/slog"
	"net/http"
	"time"

	"rental/internal/delivery/http/middleware"
	"rental/internal/delivery/http/response"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookingHandler holds dependencies for booking handlers.
type BookingHandler struct {
	uc     usecase.BookingUsecase
	logger *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		uc:     uc,
		logger: logger,
	}
}

type createBookingRequest struct {
	CarID      string `json:"carId"`
	PickupDate string `json:"pickupDate"`
	ReturnDate string `json:"returnDate"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}

// CreateBooking handles the authenticated booking request. The total price is
// computed server-side; nothing in the request body can set it.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	accountID, ok := c.Get(middleware.ContextKeyAccountID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Car ID is required")
	}

	pickupDate, err := parseDate(req.PickupDate)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Pickup and return dates are required")
	}
	returnDate, err := parseDate(req.ReturnDate)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Pickup and return dates are required")
	}

	booking, err := h.uc.Create(c.Request().Context(), &usecase.CreateBookingInput{
		AccountID:   accountID,
		CarID:       carID,
		PickupDate:  pickupDate,
		ReturnDate:  returnDate,
		RenterName:  req.Name,
		RenterPhone: req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newBookingView(booking), "Booking created successfully")
}

// ListMine handles the authenticated listing of the caller's own bookings.
func (h *BookingHandler) ListMine(c echo.Context) error {
	accountID, ok := c.Get(middleware.ContextKeyAccountID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	bookings, err := h.uc.ListOwn(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBookingViews(bookings), "")
}

// ListAll handles the admin listing of every booking.
func (h *BookingHandler) ListAll(c echo.Context) error {
	bookings, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBookingViews(bookings), "")
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("empty date")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to parse date")
	}

	return t, nil
}
