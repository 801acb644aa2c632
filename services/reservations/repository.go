package reservations

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

var (
	// ErrNoSeatsAvailable is returned when the conditional seat
	// decrement matches no row, meaning the ride sold out or left the
	// SCHEDULED state concurrently.
	ErrNoSeatsAvailable = errors.New("no seats available on ride")

	// ErrAlreadyCancelled is returned when cancelling a reservation
	// that is already in its terminal state.
	ErrAlreadyCancelled = errors.New("reservation already cancelled")

	// ErrNotPending is returned when confirming a reservation that is
	// not pending.
	ErrNotPending = errors.New("reservation is not pending")
)

// ReservationRepo defines the interface for reservation data access
// operations. Seat-count adjustments ride in the same transaction as
// the reservation mutation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/caronalabs/carona/services/reservations ReservationRepo
type ReservationRepo interface {
	// CreateReservation decrements one seat and inserts the reservation
	// atomically, returning ErrNoSeatsAvailable when the ride has no
	// seat left or is no longer scheduled.
	CreateReservation(ctx context.Context, reservation *models.Reservation) error
	// ConfirmReservation transitions PENDING to CONFIRMED and marks the
	// payment as settled, returning ErrNotPending otherwise.
	ConfirmReservation(ctx context.Context, id uuid.UUID) error
	// CancelReservation cancels the reservation and returns its seat to
	// the ride atomically, returning ErrAlreadyCancelled for terminal
	// reservations.
	CancelReservation(ctx context.Context, id uuid.UUID, rideID uuid.UUID) error
	// CancelAllByRide cancels every non-cancelled reservation on the
	// ride without touching the seat count.
	CancelAllByRide(ctx context.Context, rideID uuid.UUID) ([]*models.Reservation, error)

	GetReservationByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	HasActiveReservation(ctx context.Context, rideID, passengerID uuid.UUID) (bool, error)
	ListByPassenger(ctx context.Context, passengerID uuid.UUID, limit, offset int) ([]*models.Reservation, error)
	CountByPassenger(ctx context.Context, passengerID uuid.UUID) (int64, error)
	ListByRide(ctx context.Context, rideID uuid.UUID, confirmedOnly bool) ([]*models.Reservation, error)
}
