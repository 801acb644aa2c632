package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle belongs to a user. Registering the first active vehicle makes
// the owner a driver; deactivating the last one revokes the flag.
type Vehicle struct {
	ID        uuid.UUID `json:"vehicle_id" db:"vehicle_id"`
	OwnerID   uuid.UUID `json:"owner_id" db:"owner_id"`
	Brand     string    `json:"brand" db:"brand"`
	Model     string    `json:"model" db:"model"`
	Color     string    `json:"color" db:"color"`
	Plate     string    `json:"plate" db:"plate"`
	Seats     int       `json:"seats" db:"seats"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterVehicleRequest is the payload for vehicle registration
type RegisterVehicleRequest struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Color string `json:"color"`
	Plate string `json:"plate"`
	Seats int    `json:"seats"`
}

// UpdateVehicleRequest is the payload for a partial vehicle update.
// Nil fields are left unchanged.
type UpdateVehicleRequest struct {
	Color *string `json:"color"`
	Seats *int    `json:"seats"`
}
