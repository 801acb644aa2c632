package users

import (
	"context"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// UserGW defines the interface for account event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/caronalabs/carona/services/users UserGW
type UserGW interface {
	PublishUserRegistered(ctx context.Context, event models.AccountEvent) error
	PublishAccountDeactivated(ctx context.Context, event models.AccountEvent) error
	PublishAccountReactivated(ctx context.Context, event models.AccountEvent) error
}
