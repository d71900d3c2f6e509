package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"rental/internal/delivery/http/response"
	"rental/internal/domain/repository"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CarHandler holds dependencies for fleet catalog handlers.
type CarHandler struct {
	uc     usecase.FleetUsecase
	logger *slog.Logger
}

// NewCarHandler is the constructor for CarHandler, injected by Fx.
func NewCarHandler(uc usecase.FleetUsecase, logger *slog.Logger) *CarHandler {
	return &CarHandler{
		uc:     uc,
		logger: logger,
	}
}

type carRequest struct {
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	PricePerDay float64 `json:"pricePerDay"`
	Seats       int     `json:"seats"`
	Image       string  `json:"image"`
}

// ListCars handles the public fleet listing, with optional make and maxPrice
// query filters.
func (h *CarHandler) ListCars(c echo.Context) error {
	filter := repository.CarFilter{Make: c.QueryParam("make")}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "maxPrice must be a number")
		}
		filter.MaxPrice = maxPrice
	}

	cars, err := h.uc.ListCars(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCarViews(cars), "")
}

// GetCar handles the public single-car lookup.
func (h *CarHandler) GetCar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "CAR_NOT_FOUND", "Car not found")
	}

	car, err := h.uc.GetCar(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCarView(car), "")
}

// AddCar handles the admin request to add a fleet car.
func (h *CarHandler) AddCar(c echo.Context) error {
	var req carRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid car input")
	}

	car, err := h.uc.AddCar(c.Request().Context(), carInput(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCarView(car), "Car added successfully")
}

// UpdateCar handles the admin request to update a fleet car.
func (h *CarHandler) UpdateCar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "CAR_NOT_FOUND", "Car not found")
	}

	var req carRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid car input")
	}

	car, err := h.uc.UpdateCar(c.Request().Context(), id, carInput(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCarView(car), "Car updated successfully")
}

func carInput(req carRequest) *usecase.CarInput {
	return &usecase.CarInput{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		PricePerDay: req.PricePerDay,
		Seats:       req.Seats,
		ImageURL:    req.Image,
	}
}
