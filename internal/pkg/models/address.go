package models

import (
	"time"

	"github.com/google/uuid"
)

// Address is a geocoded location. Saved addresses belong to a driver
// (UserID set) and are soft-deleted; ad-hoc ride endpoints are stored
// without an owner.
type Address struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	UserID           *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	Latitude         float64    `json:"latitude" db:"latitude"`
	Longitude        float64    `json:"longitude" db:"longitude"`
	City             string     `json:"city" db:"city"`
	FormattedAddress string     `json:"formatted_address" db:"formatted_address"`
	Deleted          bool       `json:"-" db:"deleted"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateAddressRequest is the payload for saving a driver address
type CreateAddressRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodedLocation is the result of a reverse geocode lookup
type GeocodedLocation struct {
	City             string `json:"city"`
	FormattedAddress string `json:"formatted_address"`
}

// DistanceResult is the result of a distance matrix lookup between two
// addresses. Distance is in meters.
type DistanceResult struct {
	Distance int    `json:"distance"`
	Duration string `json:"duration"`
}
