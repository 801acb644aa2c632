package vehicles

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// VehicleUC defines the interface for vehicle business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/caronalabs/carona/services/vehicles VehicleUC
type VehicleUC interface {
	Register(ctx context.Context, ownerID uuid.UUID, req *models.RegisterVehicleRequest) (*models.Vehicle, error)
	Update(ctx context.Context, vehicleID, requesterID uuid.UUID, req *models.UpdateVehicleRequest) (*models.Vehicle, error)
	Deactivate(ctx context.Context, vehicleID, requesterID uuid.UUID) error
	Reactivate(ctx context.Context, vehicleID, requesterID uuid.UUID) (*models.Vehicle, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error)
}
