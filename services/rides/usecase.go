package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
)

// RideUC defines the interface for ride business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/caronalabs/carona/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, driverID uuid.UUID, req *models.CreateRideRequest) (*models.Ride, error)
	UpdateRide(ctx context.Context, rideID, driverID uuid.UUID, req *models.UpdateRideRequest) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID, driverID uuid.UUID) error
	StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)

	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID, p utils.Pagination) ([]*models.Ride, int64, error)
	// Search lists scheduled rides filtered by start and/or destination
	// city substring.
	Search(ctx context.Context, startCity, destinationCity string, p utils.Pagination) ([]*models.Ride, int64, error)
}
