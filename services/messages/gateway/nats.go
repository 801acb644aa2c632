package gateway

import (
	"context"
	"encoding/json"

	"github.com/caronalabs/carona/internal/pkg/constants"
	"github.com/caronalabs/carona/internal/pkg/models"
	natspkg "github.com/caronalabs/carona/internal/pkg/nats"
	"github.com/caronalabs/carona/services/messages"
)

// MessageGW handles NATS publishing for message events
type MessageGW struct {
	natsClient *natspkg.Client
}

// NewMessageGW creates a new message gateway
func NewMessageGW(client *natspkg.Client) messages.MessageGW {
	return &MessageGW{natsClient: client}
}

// PublishMessageSent publishes a message sent event
func (g *MessageGW) PublishMessageSent(ctx context.Context, event models.MessageEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectMessageSent, data)
}
