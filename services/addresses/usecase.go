package addresses

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// AddressUC defines the interface for address business logic.
// GetOrCreate resolves a ride endpoint given either a known address id
// or raw coordinates to geocode.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/caronalabs/carona/services/addresses AddressUC
type AddressUC interface {
	CreateSaved(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error)
	ListSaved(ctx context.Context, userID uuid.UUID) ([]*models.Address, error)
	Delete(ctx context.Context, addressID, userID uuid.UUID) error
	GetOrCreate(ctx context.Context, addressID *uuid.UUID, latitude, longitude *float64) (*models.Address, error)
}

// UserReader is the slice of the users repository the address service needs
type UserReader interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
