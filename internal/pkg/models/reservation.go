package models

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the status of a reservation. Transitions:
// PENDING -> CONFIRMED or CANCELLED; CONFIRMED -> CANCELLED. CANCELLED
// is terminal.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// PaymentStatus tracks the payment flag on a reservation
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
	PaymentStatusFailed   PaymentStatus = "FAILED"
)

// Reservation is a passenger's claim on one seat of a ride. A passenger
// holds at most one non-cancelled reservation per ride.
type Reservation struct {
	ID            uuid.UUID         `json:"reservation_id" db:"reservation_id"`
	RideID        uuid.UUID         `json:"ride_id" db:"ride_id"`
	PassengerID   uuid.UUID         `json:"passenger_id" db:"passenger_id"`
	Status        ReservationStatus `json:"status" db:"status"`
	PaymentStatus PaymentStatus     `json:"payment_status" db:"payment_status"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`

	// Hydrated relation, populated on reads that join it
	Passenger *User `json:"passenger,omitempty" db:"-"`
}
