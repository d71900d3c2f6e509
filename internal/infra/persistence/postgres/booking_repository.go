package postgres

import (
	"context"

	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/repository"
	"rental/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookingRepository implements repository.BookingRepository using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Create persists a new booking.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt

	return nil
}

// ListByAccount returns the account's bookings, newest first, with car snapshots.
func (repo *bookingRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Booking, error) {
	var bookingsM []model.BookingModel
	err := repo.db.WithContext(ctx).
		Preload("Car").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&bookingsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by account")
	}

	return toBookingDomainSlice(bookingsM), nil
}

// ListAll returns every booking, newest first, with car snapshots.
func (repo *bookingRepository) ListAll(ctx context.Context) ([]*entity.Booking, error) {
	var bookingsM []model.BookingModel
	err := repo.db.WithContext(ctx).
		Preload("Car").
		Order("created_at DESC").
		Find(&bookingsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return toBookingDomainSlice(bookingsM), nil
}

// Count returns the total number of bookings.
func (repo *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count bookings")
	}

	return count, nil
}

// --- Mapper functions ---

func toBookingDomainSlice(data []model.BookingModel) []*entity.Booking {
	bookings := make([]*entity.Booking, 0, len(data))
	for i := range data {
		bookings = append(bookings, toBookingDomain(&data[i]))
	}

	return bookings
}

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:          data.ID,
		AccountID:   data.AccountID,
		CarID:       data.CarID,
		Car:         toCarDomain(data.Car),
		PickupDate:  data.PickupDate,
		ReturnDate:  data.ReturnDate,
		RenterName:  data.RenterName,
		RenterPhone: data.RenterPhone,
		TotalPrice:  data.TotalPrice,
		CreatedAt:   data.CreatedAt,
	}
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:          data.ID,
		AccountID:   data.AccountID,
		CarID:       data.CarID,
		PickupDate:  data.PickupDate,
		ReturnDate:  data.ReturnDate,
		RenterName:  data.RenterName,
		RenterPhone: data.RenterPhone,
		TotalPrice:  data.TotalPrice,
	}
}
