package vehicles

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// VehicleRepo defines the interface for vehicle data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/caronalabs/carona/services/vehicles VehicleRepo
type VehicleRepo interface {
	// RegisterVehicle inserts the vehicle and promotes its owner to
	// driver in one transaction.
	RegisterVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	GetVehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error)
	// UpdateVehicleFields applies a partial column update; nil fields
	// are left untouched.
	UpdateVehicleFields(ctx context.Context, id uuid.UUID, color *string, seats *int) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error)
	CountActiveByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	SetOwnerIsDriver(ctx context.Context, ownerID uuid.UUID, isDriver bool) error
	// HasActiveRides reports whether any scheduled or in-progress ride
	// still uses the vehicle.
	HasActiveRides(ctx context.Context, vehicleID uuid.UUID) (bool, error)
}
