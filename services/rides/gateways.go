package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// UserReader is the slice of the users repository the ride service needs
type UserReader interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// VehicleReader is the slice of the vehicles repository the ride service needs
type VehicleReader interface {
	GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
}

// AddressResolver resolves a ride endpoint from an address id or raw
// coordinates.
type AddressResolver interface {
	GetOrCreate(ctx context.Context, addressID *uuid.UUID, latitude, longitude *float64) (*models.Address, error)
}
