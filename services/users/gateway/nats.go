package gateway

import (
	"context"
	"encoding/json"

	"github.com/caronalabs/carona/internal/pkg/constants"
	"github.com/caronalabs/carona/internal/pkg/models"
	natspkg "github.com/caronalabs/carona/internal/pkg/nats"
	"github.com/caronalabs/carona/services/users"
)

// UserGW handles NATS publishing for account events
type UserGW struct {
	natsClient *natspkg.Client
}

// NewUserGW creates a new user gateway
func NewUserGW(client *natspkg.Client) users.UserGW {
	return &UserGW{natsClient: client}
}

// PublishUserRegistered publishes an account registered event
func (g *UserGW) PublishUserRegistered(ctx context.Context, event models.AccountEvent) error {
	return g.publish(constants.SubjectUserRegistered, event)
}

// PublishAccountDeactivated publishes an account deactivated event
func (g *UserGW) PublishAccountDeactivated(ctx context.Context, event models.AccountEvent) error {
	return g.publish(constants.SubjectAccountDeactivated, event)
}

// PublishAccountReactivated publishes an account reactivated event
func (g *UserGW) PublishAccountReactivated(ctx context.Context, event models.AccountEvent) error {
	return g.publish(constants.SubjectAccountReactivated, event)
}

func (g *UserGW) publish(subject string, event models.AccountEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(subject, data)
}
