package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/caronalabs/carona/internal/pkg/apperr"
	"github.com/caronalabs/carona/internal/pkg/jwt"
	"github.com/caronalabs/carona/internal/pkg/logger"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
	"github.com/caronalabs/carona/services/users"
)

type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
	userGW   users.UserGW
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo, userGW users.UserGW) users.UserUC {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
		userGW:   userGW,
	}
}

// Register creates a new account with a hashed password
func (uc *userUC) Register(ctx context.Context, req *models.RegisterUserRequest) (*models.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.New("Name is required.")
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, apperr.New("A valid email is required.")
	}
	if len(req.Password) < utils.MinPasswordLength {
		return nil, apperr.New("Password must be at least 6 characters long.")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := uc.userRepo.GetUserByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	} else if existing != nil {
		return nil, apperr.Conflict("An account with this email already exists.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  string(hashed),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	uc.publishAccountEvent(ctx, uc.userGW.PublishUserRegistered, user, "registered")
	return user, nil
}

// Login verifies credentials and issues a token. Logging into a
// deactivated account reactivates it.
func (uc *userUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil {
		return nil, apperr.Unauthorized("Invalid email or password.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("Invalid email or password.")
	}

	if !user.Active {
		if err := uc.userRepo.SetActive(ctx, user.ID, true); err != nil {
			return nil, fmt.Errorf("failed to reactivate account: %w", err)
		}
		user.Active = true
		uc.publishAccountEvent(ctx, uc.userGW.PublishAccountReactivated, user, "reactivated")
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
	}, nil
}

// GetUser retrieves an account by id
func (uc *userUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("Account not found.")
	}
	return user, nil
}

// UpdateProfile applies a partial profile update
func (uc *userUC) UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := uc.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperr.New("Name cannot be empty.")
		}
		user.Name = strings.TrimSpace(*req.Name)
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !utils.IsValidEmail(email) {
			return nil, apperr.New("A valid email is required.")
		}
		if email != user.Email {
			existing, err := uc.userRepo.GetUserByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("failed to check existing account: %w", err)
			}
			if existing != nil {
				return nil, apperr.Conflict("An account with this email already exists.")
			}
			user.Email = email
		}
	}

	user.UpdatedAt = time.Now()
	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return user, nil
}

// DeactivateAccount soft-deletes an account; a later login reactivates it
func (uc *userUC) DeactivateAccount(ctx context.Context, id uuid.UUID) error {
	user, err := uc.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if !user.Active {
		return apperr.New("Account is already deactivated.")
	}

	if err := uc.userRepo.SetActive(ctx, id, false); err != nil {
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	uc.publishAccountEvent(ctx, uc.userGW.PublishAccountDeactivated, user, "deactivated")
	return nil
}

// RecalculateAverageRating refreshes the stored average from the
// reviews a user has received. Invoked by the review event consumer.
func (uc *userUC) RecalculateAverageRating(ctx context.Context, userID uuid.UUID) error {
	if err := uc.userRepo.RecalculateAverageRating(ctx, userID); err != nil {
		return fmt.Errorf("failed to recalculate average rating: %w", err)
	}
	return nil
}

// publish failures never fail the account operation itself
func (uc *userUC) publishAccountEvent(ctx context.Context, publish func(context.Context, models.AccountEvent) error, user *models.User, action string) {
	event := models.AccountEvent{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Timestamp: time.Now(),
	}
	if err := publish(ctx, event); err != nil {
		logger.Warn("Failed to publish account event",
			logger.String("action", action),
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
	}
}
