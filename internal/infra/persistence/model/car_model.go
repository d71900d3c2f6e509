package model

import (
	"time"

	"github.com/google/uuid"
)

// CarModel mirrors the 'cars' table.
type CarModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Make        string    `gorm:"type:varchar(100);not null"`
	Model       string    `gorm:"type:varchar(100);not null"`
	Year        int
	PricePerDay float64 `gorm:"not null;check:price_per_day > 0"`
	Seats       int
	ImageURL    string `gorm:"type:text"`
	CreatedAt   time.Time

	Bookings []BookingModel `gorm:"foreignKey:CarID"`
}

// TableName explicitly sets the table name for GORM.
func (CarModel) TableName() string {
	return "cars"
}
