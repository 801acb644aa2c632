package messages

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// MessageGW defines the interface for message event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/caronalabs/carona/services/messages MessageGW
type MessageGW interface {
	PublishMessageSent(ctx context.Context, event models.MessageEvent) error
}

// RideReader is the slice of the rides repository the message service needs
type RideReader interface {
	GetRideByID(ctx context.Context, id uuid.UUID) (*models.Ride, error)
}

// ReservationReader is the slice of the reservations repository the
// message service needs for participant checks.
type ReservationReader interface {
	HasActiveReservation(ctx context.Context, rideID, passengerID uuid.UUID) (bool, error)
}
