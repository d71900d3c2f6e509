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

// carRepository implements repository.CarRepository using GORM.
type carRepository struct {
	db *gorm.DB
}

// NewCarRepository is the constructor for carRepository.
func NewCarRepository(db *gorm.DB) repository.CarRepository {
	return &carRepository{db: db}
}

// List returns fleet cars matching the filter, newest first.
func (repo *carRepository) List(ctx context.Context, filter repository.CarFilter) ([]*entity.Car, error) {
	query := repo.db.WithContext(ctx).Model(&model.CarModel{})

	if filter.Make != "" {
		query = query.Where("make ILIKE ?", "%"+filter.Make+"%")
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price_per_day <= ?", filter.MaxPrice)
	}

	var carsM []model.CarModel
	if err := query.Order("created_at DESC").Find(&carsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cars")
	}

	cars := make([]*entity.Car, 0, len(carsM))
	for i := range carsM {
		cars = append(cars, toCarDomain(&carsM[i]))
	}

	return cars, nil
}

// FindByID retrieves a single car by its unique ID.
func (repo *carRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	var carM model.CarModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&carM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to find car by id")
	}

	return toCarDomain(&carM), nil
}

// Create persists a new car.
func (repo *carRepository) Create(ctx context.Context, car *entity.Car) error {
	carM := fromCarDomain(car)

	if err := repo.db.WithContext(ctx).Create(carM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithMessage("Daily price must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create car")
	}

	car.ID = carM.ID
	car.CreatedAt = carM.CreatedAt

	return nil
}

// Update modifies an existing car in place.
func (repo *carRepository) Update(ctx context.Context, car *entity.Car) error {
	carM := fromCarDomain(car)

	result := repo.db.WithContext(ctx).
		Model(&model.CarModel{}).
		Where("id = ?", car.ID).
		Updates(map[string]any{
			"make":          carM.Make,
			"model":         carM.Model,
			"year":          carM.Year,
			"price_per_day": carM.PricePerDay,
			"seats":         carM.Seats,
			"image_url":     carM.ImageURL,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithMessage("Daily price must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update car")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCarNotFound
	}

	return nil
}

// ReplaceAll atomically swaps the whole fleet for the given cars.
func (repo *carRepository) ReplaceAll(ctx context.Context, cars []*entity.Car) error {
	carsM := make([]*model.CarModel, 0, len(cars))
	for _, car := range cars {
		carsM = append(carsM, fromCarDomain(car))
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.BookingModel{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.CarModel{}).Error; err != nil {
			return err
		}
		if len(carsM) == 0 {
			return nil
		}

		return tx.Create(&carsM).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace fleet")
	}

	for i, carM := range carsM {
		cars[i].ID = carM.ID
		cars[i].CreatedAt = carM.CreatedAt
	}

	return nil
}

// Count returns the total number of cars.
func (repo *carRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CarModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count cars")
	}

	return count, nil
}

// --- Mapper functions ---

func toCarDomain(data *model.CarModel) *entity.Car {
	if data == nil {
		return nil
	}

	return &entity.Car{
		ID:          data.ID,
		Make:        data.Make,
		Model:       data.Model,
		Year:        data.Year,
		PricePerDay: data.PricePerDay,
		Seats:       data.Seats,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
	}
}

func fromCarDomain(data *entity.Car) *model.CarModel {
	if data == nil {
		return nil
	}

	return &model.CarModel{
		ID:          data.ID,
		Make:        data.Make,
		Model:       data.Model,
		Year:        data.Year,
		PricePerDay: data.PricePerDay,
		Seats:       data.Seats,
		ImageURL:    data.ImageURL,
	}
}
