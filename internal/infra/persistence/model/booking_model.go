package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table. Rows are insert-only.
type BookingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CarID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Car         *CarModel `gorm:"foreignKey:CarID"`
	PickupDate  time.Time `gorm:"not null"`
	ReturnDate  time.Time `gorm:"not null"`
	RenterName  string    `gorm:"type:varchar(100)"`
	RenterPhone string    `gorm:"type:varchar(32)"`
	TotalPrice  float64   `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
