package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
)

// ReservationUC defines the interface for reservation business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/caronalabs/carona/services/reservations ReservationUC
type ReservationUC interface {
	Create(ctx context.Context, rideID, passengerID uuid.UUID) (*models.Reservation, error)
	Confirm(ctx context.Context, reservationID, requesterID uuid.UUID) (*models.Reservation, error)
	Cancel(ctx context.Context, reservationID, requesterID uuid.UUID) error
	// CancelAllForRide cancels every remaining reservation of a
	// cancelled ride. Invoked by the ride.cancelled consumer; seats are
	// not restored on the dead ride.
	CancelAllForRide(ctx context.Context, rideID uuid.UUID) error

	ListOwn(ctx context.Context, passengerID uuid.UUID, p utils.Pagination) ([]*models.Reservation, int64, error)
	// ListByRide lists a ride's reservations for its driver, optionally
	// restricted to confirmed ones.
	ListByRide(ctx context.Context, rideID, requesterID uuid.UUID, confirmedOnly bool) ([]*models.Reservation, error)
}
