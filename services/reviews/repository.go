package reviews

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// ReviewRepo defines the interface for review data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/caronalabs/carona/services/reviews ReviewRepo
type ReviewRepo interface {
	CreateReview(ctx context.Context, review *models.Review) error
	GetReviewByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	GetByRideAndReviewer(ctx context.Context, rideID, reviewerID uuid.UUID) (*models.Review, error)
	UpdateReview(ctx context.Context, review *models.Review) error
	DeleteReview(ctx context.Context, id uuid.UUID) error
	ListByReviewee(ctx context.Context, revieweeID uuid.UUID, limit, offset int) ([]*models.Review, error)
	CountByReviewee(ctx context.Context, revieweeID uuid.UUID) (int64, error)
	// HasConfirmedReservation reports whether the passenger held a
	// confirmed reservation on the ride.
	HasConfirmedReservation(ctx context.Context, rideID, passengerID uuid.UUID) (bool, error)
}
