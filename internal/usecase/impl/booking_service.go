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

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager   repository.TransactionManager
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for bookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BookingRepo repository.BookingRepository
	CarRepo     repository.CarRepository
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:   params.TxManager,
		bookingRepo: params.BookingRepo,
		carRepo:     params.CarRepo,
		logger:      params.Logger,
	}
}

// Create books a car for the account. The total price is derived inside the
// transaction from the car's current daily rate, so a concurrent rate change
// cannot produce a charge the car never had.
func (srv *bookingService) Create(ctx context.Context, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	if err := validateBooking(input); err != nil {
		srv.logger.Warn("Booking validation failed",
			slog.Any("accountID", input.AccountID), slog.Any("carID", input.CarID), slog.Any("error", err))

		return nil, err
	}

	booking := &entity.Booking{
		AccountID:   input.AccountID,
		CarID:       input.CarID,
		PickupDate:  input.PickupDate,
		ReturnDate:  input.ReturnDate,
		RenterName:  strings.TrimSpace(input.RenterName),
		RenterPhone: strings.TrimSpace(input.RenterPhone),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		car, err := repoFactory.CarRepo().FindByID(ctx, input.CarID)
		if err != nil {
			if errors.Is(err, repository.ErrCarNotFound) {
				return domainerrors.ErrCarNotFound
			}

			return errors.Wrap(err, "failed to load car for booking")
		}

		totalPrice, err := entity.QuoteTotalPrice(car.PricePerDay, input.PickupDate, input.ReturnDate)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithMessage("Return date must be after pickup date")
		}

		booking.Car = car
		booking.TotalPrice = totalPrice

		if err := repoFactory.BookingRepo().Create(ctx, booking); err != nil {
			return errors.Wrap(err, "failed to create booking")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Booking created",
		slog.Any("bookingID", booking.ID),
		slog.Any("accountID", booking.AccountID),
		slog.Any("carID", booking.CarID),
		slog.Float64("totalPrice", booking.TotalPrice))

	return booking, nil
}

func validateBooking(input *usecase.CreateBookingInput) error {
	if input.CarID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithMessage("Car ID is required")
	}
	if input.PickupDate.IsZero() || input.ReturnDate.IsZero() {
		return domainerrors.ErrValidationFailed.WithMessage("Pickup and return dates are required")
	}
	if strings.TrimSpace(input.RenterName) == "" || strings.TrimSpace(input.RenterPhone) == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Renter name and phone are required")
	}
	if !input.ReturnDate.After(input.PickupDate) {
		return domainerrors.ErrValidationFailed.WithMessage("Return date must be after pickup date")
	}

	return nil
}

// ListOwn returns the account's bookings, newest first.
func (srv *bookingService) ListOwn(ctx context.Context, accountID uuid.UUID) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings for account")
	}

	return bookings, nil
}

// ListAll returns every booking, newest first.
func (srv *bookingService) ListAll(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all bookings")
	}

	return bookings, nil
}
