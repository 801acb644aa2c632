package rides

import (
	"context"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// RideGW defines the interface for ride event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/caronalabs/carona/services/rides RideGW
type RideGW interface {
	PublishRideCreated(ctx context.Context, event models.RideEvent) error
	PublishRideUpdated(ctx context.Context, event models.RideEvent) error
	PublishRideCancelled(ctx context.Context, event models.RideEvent) error
	PublishRideStarted(ctx context.Context, event models.RideEvent) error
	PublishRideCompleted(ctx context.Context, event models.RideEvent) error
}
