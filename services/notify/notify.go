// Package notify consumes domain events and drives the side effects
// that must not block the publishing operation: transactional email,
// cascading reservation cancellation and rating recalculation.
package notify

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// UserReader is the slice of the users repository the notify service needs
type UserReader interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RideReader is the slice of the rides repository the notify service needs
type RideReader interface {
	GetRideByID(ctx context.Context, id uuid.UUID) (*models.Ride, error)
}

// ReservationReader is the slice of the reservations repository the
// notify service needs.
type ReservationReader interface {
	ListByRide(ctx context.Context, rideID uuid.UUID, confirmedOnly bool) ([]*models.Reservation, error)
}

// ReservationCanceller cancels every remaining reservation of a
// cancelled ride.
type ReservationCanceller interface {
	CancelAllForRide(ctx context.Context, rideID uuid.UUID) error
}

// RatingRecalculator refreshes a user's stored average rating
type RatingRecalculator interface {
	RecalculateAverageRating(ctx context.Context, userID uuid.UUID) error
}
