package models

import (
	"time"

	"github.com/google/uuid"
)

// RideEvent is the payload published on ride lifecycle subjects. The
// ride is hydrated with driver and address details so subscribers can
// notify without further lookups.
type RideEvent struct {
	Ride      Ride      `json:"ride"`
	Timestamp time.Time `json:"timestamp"`
}

// ReservationEvent is the payload published on reservation lifecycle subjects
type ReservationEvent struct {
	Reservation Reservation `json:"reservation"`
	Timestamp   time.Time   `json:"timestamp"`
}

// ReviewEvent is the payload published on review subjects; carries only
// the reviewee whose average rating must be recalculated.
type ReviewEvent struct {
	RevieweeID uuid.UUID `json:"reviewee_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// AccountEvent is the payload published on account subjects
type AccountEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageEvent is the payload published when an in-ride message is stored
type MessageEvent struct {
	Message   Message   `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
