package messages

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// MessageRepo defines the interface for message data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/caronalabs/carona/services/messages MessageRepo
type MessageRepo interface {
	CreateMessage(ctx context.Context, message *models.Message) error
	ListByRide(ctx context.Context, rideID uuid.UUID, limit, offset int) ([]*models.Message, error)
	CountByRide(ctx context.Context, rideID uuid.UUID) (int64, error)
}
