package reservations

import (
	"context"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// ReservationGW defines the interface for reservation event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/caronalabs/carona/services/reservations ReservationGW
type ReservationGW interface {
	PublishReservationCreated(ctx context.Context, event models.ReservationEvent) error
	PublishReservationConfirmed(ctx context.Context, event models.ReservationEvent) error
	PublishReservationCancelled(ctx context.Context, event models.ReservationEvent) error
}
