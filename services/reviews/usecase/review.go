package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/apperr"
	"github.com/caronalabs/carona/internal/pkg/logger"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
	"github.com/caronalabs/carona/services/reviews"
)

type reviewUC struct {
	cfg        *models.Config
	reviewRepo reviews.ReviewRepo
	reviewGW   reviews.ReviewGW
	rideReader reviews.RideReader
}

// NewReviewUC creates a new review use case
func NewReviewUC(
	cfg *models.Config,
	reviewRepo reviews.ReviewRepo,
	reviewGW reviews.ReviewGW,
	rideReader reviews.RideReader,
) reviews.ReviewUC {
	return &reviewUC{
		cfg:        cfg,
		reviewRepo: reviewRepo,
		reviewGW:   reviewGW,
		rideReader: rideReader,
	}
}

// Create stores a review of a completed ride's driver. The reviewer
// must have held a confirmed reservation on the ride and may review it
// only once.
func (uc *reviewUC) Create(ctx context.Context, reviewerID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error) {
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	ride, err := uc.rideReader.GetRideByID(ctx, req.RideID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	if ride == nil {
		return nil, apperr.NotFound("Ride not found.")
	}
	if ride.Status != models.RideStatusCompleted {
		return nil, apperr.New("Only completed rides can be reviewed.")
	}
	if ride.DriverID == reviewerID {
		return nil, apperr.Forbidden("Drivers cannot review their own rides.")
	}

	confirmed, err := uc.reviewRepo.HasConfirmedReservation(ctx, req.RideID, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check reservation: %w", err)
	}
	if !confirmed {
		return nil, apperr.Forbidden("Only passengers with a confirmed reservation can review this ride.")
	}

	existing, err := uc.reviewRepo.GetByRideAndReviewer(ctx, req.RideID, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("You have already reviewed this ride.")
	}

	now := time.Now()
	review := &models.Review{
		ID:         uuid.New(),
		RideID:     req.RideID,
		ReviewerID: reviewerID,
		RevieweeID: ride.DriverID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	uc.publish(ctx, uc.reviewGW.PublishReviewCreated, review, "created")
	return review, nil
}

// Update edits the reviewer's own review
func (uc *reviewUC) Update(ctx context.Context, reviewID, requesterID uuid.UUID, req *models.UpdateReviewRequest) (*models.Review, error) {
	review, err := uc.getOwnedReview(ctx, reviewID, requesterID)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		if err := validateRating(*req.Rating); err != nil {
			return nil, err
		}
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	review.UpdatedAt = time.Now()

	if err := uc.reviewRepo.UpdateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	uc.publish(ctx, uc.reviewGW.PublishReviewUpdated, review, "updated")
	return review, nil
}

// Delete removes the reviewer's own review
func (uc *reviewUC) Delete(ctx context.Context, reviewID, requesterID uuid.UUID) error {
	review, err := uc.getOwnedReview(ctx, reviewID, requesterID)
	if err != nil {
		return err
	}

	if err := uc.reviewRepo.DeleteReview(ctx, reviewID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	uc.publish(ctx, uc.reviewGW.PublishReviewDeleted, review, "deleted")
	return nil
}

// ListByReviewee retrieves the reviews a driver received, newest first
func (uc *reviewUC) ListByReviewee(ctx context.Context, revieweeID uuid.UUID, p utils.Pagination) ([]*models.Review, int64, error) {
	total, err := uc.reviewRepo.CountByReviewee(ctx, revieweeID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	list, err := uc.reviewRepo.ListByReviewee(ctx, revieweeID, p.PerPage, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	return list, total, nil
}

func (uc *reviewUC) getOwnedReview(ctx context.Context, reviewID, requesterID uuid.UUID) (*models.Review, error) {
	review, err := uc.reviewRepo.GetReviewByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if review == nil {
		return nil, apperr.NotFound("Review not found.")
	}
	if review.ReviewerID != requesterID {
		return nil, apperr.Forbidden("You do not own this review.")
	}
	return review, nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperr.New("Rating must be between 1 and 5.")
	}
	return nil
}

// publish failures never fail the review operation itself
func (uc *reviewUC) publish(ctx context.Context, publish func(context.Context, models.ReviewEvent) error, review *models.Review, action string) {
	event := models.ReviewEvent{
		RevieweeID: review.RevieweeID,
		Timestamp:  time.Now(),
	}
	if err := publish(ctx, event); err != nil {
		logger.Warn("Failed to publish review event",
			logger.String("action", action),
			logger.String("review_id", review.ID.String()),
			logger.Err(err))
	}
}
