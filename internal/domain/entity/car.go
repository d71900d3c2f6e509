// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Car represents a single vehicle of the rental fleet.
// Cars are managed by admin operators and readable by anyone.
type Car struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the car.
	Make        string    // Manufacturer, e.g. "Toyota".
	Model       string    // Model name, e.g. "Camry".
	Year        int       // Model year.
	PricePerDay float64   // Daily rental rate. Must be positive.
	Seats       int       // Number of seats.
	ImageURL    string    // Reference to the car's display image.
	CreatedAt   time.Time // Timestamp of when this car was added to the fleet.
}
