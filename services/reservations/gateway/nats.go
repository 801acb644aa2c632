package gateway

import (
	"context"
	"encoding/json"

	"github.com/caronalabs/carona/internal/pkg/constants"
	"github.com/caronalabs/carona/internal/pkg/models"
	natspkg "github.com/caronalabs/carona/internal/pkg/nats"
	"github.com/caronalabs/carona/services/reservations"
)

// ReservationGW handles NATS publishing for reservation events
type ReservationGW struct {
	natsClient *natspkg.Client
}

// NewReservationGW creates a new reservation gateway
func NewReservationGW(client *natspkg.Client) reservations.ReservationGW {
	return &ReservationGW{natsClient: client}
}

// PublishReservationCreated publishes a reservation created event
func (g *ReservationGW) PublishReservationCreated(ctx context.Context, event models.ReservationEvent) error {
	return g.publish(constants.SubjectReservationCreated, event)
}

// PublishReservationConfirmed publishes a reservation confirmed event
func (g *ReservationGW) PublishReservationConfirmed(ctx context.Context, event models.ReservationEvent) error {
	return g.publish(constants.SubjectReservationConfirmed, event)
}

// PublishReservationCancelled publishes a reservation cancelled event
func (g *ReservationGW) PublishReservationCancelled(ctx context.Context, event models.ReservationEvent) error {
	return g.publish(constants.SubjectReservationCancelled, event)
}

func (g *ReservationGW) publish(subject string, event models.ReservationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(subject, data)
}
