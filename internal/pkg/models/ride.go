package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride. Transitions are linear:
// SCHEDULED -> IN_PROGRESS -> COMPLETED, or SCHEDULED -> CANCELLED.
// COMPLETED and CANCELLED are terminal.
type RideStatus string

const (
	RideStatusScheduled  RideStatus = "SCHEDULED"
	RideStatusInProgress RideStatus = "IN_PROGRESS"
	RideStatusCompleted  RideStatus = "COMPLETED"
	RideStatusCancelled  RideStatus = "CANCELLED"
)

// Ride is a scheduled trip offered by a driver with a fixed seat capacity.
// AvailableSeats tracks unclaimed seats and must never go negative or
// exceed the seat count the ride was created with.
type Ride struct {
	ID             uuid.UUID  `json:"ride_id" db:"ride_id"`
	DriverID       uuid.UUID  `json:"driver_id" db:"driver_id"`
	VehicleID      uuid.UUID  `json:"vehicle_id" db:"vehicle_id"`
	StartAddressID uuid.UUID  `json:"start_address_id" db:"start_address_id"`
	EndAddressID   uuid.UUID  `json:"end_address_id" db:"end_address_id"`
	StartTime      time.Time  `json:"start_time" db:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty" db:"end_time"`
	Price          float64    `json:"price" db:"price"`
	AvailableSeats int        `json:"available_seats" db:"available_seats"`
	Preferences    string     `json:"preferences" db:"preferences"`
	Status         RideStatus `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`

	// Hydrated relations, populated on reads that join them
	Driver       *User    `json:"driver,omitempty" db:"-"`
	StartAddress *Address `json:"start_address,omitempty" db:"-"`
	EndAddress   *Address `json:"end_address,omitempty" db:"-"`
}

// CreateRideRequest is the payload for ride creation. Each endpoint is
// given either as a saved address id or as raw coordinates to geocode.
type CreateRideRequest struct {
	VehicleID       uuid.UUID  `json:"vehicle_id"`
	StartLocationID *uuid.UUID `json:"start_location_id,omitempty"`
	EndLocationID   *uuid.UUID `json:"end_location_id,omitempty"`
	StartLatitude   *float64   `json:"start_latitude,omitempty"`
	StartLongitude  *float64   `json:"start_longitude,omitempty"`
	EndLatitude     *float64   `json:"end_latitude,omitempty"`
	EndLongitude    *float64   `json:"end_longitude,omitempty"`
	StartTime       time.Time  `json:"start_time"`
	Price           float64    `json:"price"`
	AvailableSeats  int        `json:"available_seats"`
	Preferences     string     `json:"preferences"`
}

// UpdateRideRequest carries partial ride updates; nil fields retain
// their prior value.
type UpdateRideRequest struct {
	VehicleID       *uuid.UUID `json:"vehicle_id,omitempty"`
	StartLocationID *uuid.UUID `json:"start_location_id,omitempty"`
	EndLocationID   *uuid.UUID `json:"end_location_id,omitempty"`
	StartLatitude   *float64   `json:"start_latitude,omitempty"`
	StartLongitude  *float64   `json:"start_longitude,omitempty"`
	EndLatitude     *float64   `json:"end_latitude,omitempty"`
	EndLongitude    *float64   `json:"end_longitude,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	AvailableSeats  *int       `json:"available_seats,omitempty"`
	Preferences     *string    `json:"preferences,omitempty"`
}

// RideUpdateFields is the set of columns a partial update touches.
// Nil fields are left unchanged by the repository.
type RideUpdateFields struct {
	VehicleID      *uuid.UUID
	StartAddressID *uuid.UUID
	EndAddressID   *uuid.UUID
	StartTime      *time.Time
	Price          *float64
	AvailableSeats *int
	Preferences    *string
}
