package messages

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
)

// MessageUC defines the interface for in-ride messaging business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/caronalabs/carona/services/messages MessageUC
type MessageUC interface {
	Send(ctx context.Context, senderID uuid.UUID, req *models.SendMessageRequest) (*models.Message, error)
	ListByRide(ctx context.Context, rideID, requesterID uuid.UUID, p utils.Pagination) ([]*models.Message, int64, error)
}
