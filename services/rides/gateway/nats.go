package gateway

import (
	"context"
	"encoding/json"

	"github.com/caronalabs/carona/internal/pkg/constants"
	"github.com/caronalabs/carona/internal/pkg/models"
	natspkg "github.com/caronalabs/carona/internal/pkg/nats"
	"github.com/caronalabs/carona/services/rides"
)

// RideGW handles NATS publishing for ride lifecycle events
type RideGW struct {
	natsClient *natspkg.Client
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client) rides.RideGW {
	return &RideGW{natsClient: client}
}

// PublishRideCreated publishes a ride created event
func (g *RideGW) PublishRideCreated(ctx context.Context, event models.RideEvent) error {
	return g.publish(constants.SubjectRideCreated, event)
}

// PublishRideUpdated publishes a ride updated event
func (g *RideGW) PublishRideUpdated(ctx context.Context, event models.RideEvent) error {
	return g.publish(constants.SubjectRideUpdated, event)
}

// PublishRideCancelled publishes a ride cancelled event. The notify
// consumer reacts by cancelling the ride's reservations.
func (g *RideGW) PublishRideCancelled(ctx context.Context, event models.RideEvent) error {
	return g.publish(constants.SubjectRideCancelled, event)
}

// PublishRideStarted publishes a ride started event
func (g *RideGW) PublishRideStarted(ctx context.Context, event models.RideEvent) error {
	return g.publish(constants.SubjectRideStarted, event)
}

// PublishRideCompleted publishes a ride completed event
func (g *RideGW) PublishRideCompleted(ctx context.Context, event models.RideEvent) error {
	return g.publish(constants.SubjectRideCompleted, event)
}

func (g *RideGW) publish(subject string, event models.RideEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(subject, data)
}
