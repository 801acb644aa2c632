package models

import (
	"time"

	"github.com/google/uuid"
)

// Review rates a ride's driver. Unique per (ride, reviewer); created
// only after the ride completed and the reviewer held a confirmed
// reservation on it.
type Review struct {
	ID         uuid.UUID `json:"review_id" db:"review_id"`
	RideID     uuid.UUID `json:"ride_id" db:"ride_id"`
	ReviewerID uuid.UUID `json:"reviewer_id" db:"reviewer_id"`
	RevieweeID uuid.UUID `json:"reviewee_id" db:"reviewee_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// CreateReviewRequest is the payload for review creation
type CreateReviewRequest struct {
	RideID  uuid.UUID `json:"ride_id"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
}

// UpdateReviewRequest carries partial review updates
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}
