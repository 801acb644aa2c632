package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// UserUC defines the interface for account business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/caronalabs/carona/services/users UserUC
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterUserRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest) (*models.User, error)
	DeactivateAccount(ctx context.Context, id uuid.UUID) error
	RecalculateAverageRating(ctx context.Context, userID uuid.UUID) error
}
