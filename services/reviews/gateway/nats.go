package gateway

import (
	"context"
	"encoding/json"

	"github.com/caronalabs/carona/internal/pkg/constants"
	"github.com/caronalabs/carona/internal/pkg/models"
	natspkg "github.com/caronalabs/carona/internal/pkg/nats"
	"github.com/caronalabs/carona/services/reviews"
)

// ReviewGW handles NATS publishing for review events
type ReviewGW struct {
	natsClient *natspkg.Client
}

// NewReviewGW creates a new review gateway
func NewReviewGW(client *natspkg.Client) reviews.ReviewGW {
	return &ReviewGW{natsClient: client}
}

// PublishReviewCreated publishes a review created event
func (g *ReviewGW) PublishReviewCreated(ctx context.Context, event models.ReviewEvent) error {
	return g.publish(constants.SubjectReviewCreated, event)
}

// PublishReviewUpdated publishes a review updated event
func (g *ReviewGW) PublishReviewUpdated(ctx context.Context, event models.ReviewEvent) error {
	return g.publish(constants.SubjectReviewUpdated, event)
}

// PublishReviewDeleted publishes a review deleted event
func (g *ReviewGW) PublishReviewDeleted(ctx context.Context, event models.ReviewEvent) error {
	return g.publish(constants.SubjectReviewDeleted, event)
}

func (g *ReviewGW) publish(subject string, event models.ReviewEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(subject, data)
}
