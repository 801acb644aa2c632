package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. A user becomes a driver by
// registering a vehicle and stops being one when the last active
// vehicle is deactivated.
type User struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	Password      string    `json:"-" db:"password"`
	IsDriver      bool      `json:"is_driver" db:"is_driver"`
	Active        bool      `json:"active" db:"active"`
	AverageRating *float64  `json:"average_rating,omitempty" db:"average_rating"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterUserRequest is the payload for account registration
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token back to the client
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
	UserID    uuid.UUID `json:"user_id"`
}

// UpdateUserRequest carries partial profile updates; nil fields are untouched
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
