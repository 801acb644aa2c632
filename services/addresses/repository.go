package addresses

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// AddressRepo defines the interface for address data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/caronalabs/carona/services/addresses AddressRepo
type AddressRepo interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Address, error)
	CountSavedByUser(ctx context.Context, userID uuid.UUID) (int, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
