package reviews

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
)

// ReviewUC defines the interface for review business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/caronalabs/carona/services/reviews ReviewUC
type ReviewUC interface {
	Create(ctx context.Context, reviewerID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error)
	Update(ctx context.Context, reviewID, requesterID uuid.UUID, req *models.UpdateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, reviewID, requesterID uuid.UUID) error
	ListByReviewee(ctx context.Context, revieweeID uuid.UUID, p utils.Pagination) ([]*models.Review, int64, error)
}
