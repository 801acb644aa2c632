package reviews

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// ReviewGW defines the interface for review event publishing. Every
// review mutation publishes the reviewee so the rating recalculation
// consumer can refresh their average.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/caronalabs/carona/services/reviews ReviewGW
type ReviewGW interface {
	PublishReviewCreated(ctx context.Context, event models.ReviewEvent) error
	PublishReviewUpdated(ctx context.Context, event models.ReviewEvent) error
	PublishReviewDeleted(ctx context.Context, event models.ReviewEvent) error
}

// RideReader is the slice of the rides repository the review service needs
type RideReader interface {
	GetRideByID(ctx context.Context, id uuid.UUID) (*models.Ride, error)
}
