package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// ReviewRepo provides review data access on PostgreSQL
type ReviewRepo struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sqlx.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

const reviewColumns = `review_id, ride_id, reviewer_id, reviewee_id, rating, comment, created_at, updated_at`

// CreateReview inserts a new review
func (r *ReviewRepo) CreateReview(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (review_id, ride_id, reviewer_id, reviewee_id, rating, comment, created_at, updated_at)
		VALUES (:review_id, :ride_id, :reviewer_id, :reviewee_id, :rating, :comment, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, review); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	return nil
}

// GetReviewByID retrieves a review by id, returning nil when absent
func (r *ReviewRepo) GetReviewByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE review_id = $1`, reviewColumns)

	var review models.Review
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return &review, nil
}

// GetByRideAndReviewer retrieves the reviewer's review of a ride,
// returning nil when absent.
func (r *ReviewRepo) GetByRideAndReviewer(ctx context.Context, rideID, reviewerID uuid.UUID) (*models.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE ride_id = $1 AND reviewer_id = $2`, reviewColumns)

	var review models.Review
	if err := r.db.GetContext(ctx, &review, query, rideID, reviewerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return &review, nil
}

// UpdateReview updates the mutable review columns
func (r *ReviewRepo) UpdateReview(ctx context.Context, review *models.Review) error {
	query := `
		UPDATE reviews SET rating = :rating, comment = :comment, updated_at = :updated_at
		WHERE review_id = :review_id
	`

	if _, err := r.db.NamedExecContext(ctx, query, review); err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	return nil
}

// DeleteReview removes a review
func (r *ReviewRepo) DeleteReview(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE review_id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}

// ListByReviewee retrieves the reviews a user received, newest first
func (r *ReviewRepo) ListByReviewee(ctx context.Context, revieweeID uuid.UUID, limit, offset int) ([]*models.Review, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM reviews
		WHERE reviewee_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, reviewColumns)

	list := []*models.Review{}
	if err := r.db.SelectContext(ctx, &list, query, revieweeID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return list, nil
}

// CountByReviewee counts the reviews a user received
func (r *ReviewRepo) CountByReviewee(ctx context.Context, revieweeID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE reviewee_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, revieweeID); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	return count, nil
}

// HasConfirmedReservation reports whether the passenger held a
// confirmed reservation on the ride.
func (r *ReviewRepo) HasConfirmedReservation(ctx context.Context, rideID, passengerID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM reservations
			WHERE ride_id = $1 AND passenger_id = $2 AND status = 'CONFIRMED'
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, rideID, passengerID); err != nil {
		return false, fmt.Errorf("failed to check confirmed reservation: %w", err)
	}

	return exists, nil
}
