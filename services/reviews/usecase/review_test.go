package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/caronalabs/carona/internal/pkg/apperr"
	"github.com/caronalabs/carona/internal/pkg/models"
)

// Mock Review Repository
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) CreateReview(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepo) GetReviewByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepo) GetByRideAndReviewer(ctx context.Context, rideID, reviewerID uuid.UUID) (*models.Review, error) {
	args := m.Called(ctx, rideID, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepo) UpdateReview(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepo) DeleteReview(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepo) ListByReviewee(ctx context.Context, revieweeID uuid.UUID, limit, offset int) ([]*models.Review, error) {
	args := m.Called(ctx, revieweeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Review), args.Error(1)
}

func (m *MockReviewRepo) CountByReviewee(ctx context.Context, revieweeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, revieweeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepo) HasConfirmedReservation(ctx context.Context, rideID, passengerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, rideID, passengerID)
	return args.Bool(0), args.Error(1)
}

// Mock Review Gateway
type MockReviewGW struct {
	mock.Mock
}

func (m *MockReviewGW) PublishReviewCreated(ctx context.Context, event models.ReviewEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockReviewGW) PublishReviewUpdated(ctx context.Context, event models.ReviewEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockReviewGW) PublishReviewDeleted(ctx context.Context, event models.ReviewEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// Mock Ride Reader
type MockRideReader struct {
	mock.Mock
}

func (m *MockRideReader) GetRideByID(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ride), args.Error(1)
}

func newTestReviewUC() (*MockReviewRepo, *MockReviewGW, *MockRideReader, *reviewUC) {
	mockRepo := new(MockReviewRepo)
	mockGW := new(MockReviewGW)
	mockRides := new(MockRideReader)
	uc := NewReviewUC(&models.Config{}, mockRepo, mockGW, mockRides).(*reviewUC)
	return mockRepo, mockGW, mockRides, uc
}

func completedRide(id, driverID uuid.UUID) *models.Ride {
	return &models.Ride{ID: id, DriverID: driverID, Status: models.RideStatusCompleted}
}

func TestCreateReview_Success(t *testing.T) {
	mockRepo, mockGW, mockRides, uc := newTestReviewUC()

	rideID := uuid.New()
	driverID := uuid.New()
	reviewerID := uuid.New()

	mockRides.On("GetRideByID", mock.Anything, rideID).Return(completedRide(rideID, driverID), nil)
	mockRepo.On("HasConfirmedReservation", mock.Anything, rideID, reviewerID).Return(true, nil)
	mockRepo.On("GetByRideAndReviewer", mock.Anything, rideID, reviewerID).Return(nil, nil)
	mockRepo.On("CreateReview", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)
	mockGW.On("PublishReviewCreated", mock.Anything, mock.Anything).Return(nil)

	review, err := uc.Create(context.Background(), reviewerID, &models.CreateReviewRequest{
		RideID:  rideID,
		Rating:  5,
		Comment: "Great ride",
	})

	assert.NoError(t, err)
	assert.Equal(t, driverID, review.RevieweeID)
	assert.Equal(t, reviewerID, review.ReviewerID)
	mockRepo.AssertExpectations(t)
	mockGW.AssertExpectations(t)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	_, _, _, uc := newTestReviewUC()

	review, err := uc.Create(context.Background(), uuid.New(), &models.CreateReviewRequest{
		RideID: uuid.New(),
		Rating: 6,
	})

	assert.Nil(t, review)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "between 1 and 5")
}

func TestCreateReview_RideNotCompleted(t *testing.T) {
	_, _, mockRides, uc := newTestReviewUC()

	rideID := uuid.New()
	ride := completedRide(rideID, uuid.New())
	ride.Status = models.RideStatusInProgress

	mockRides.On("GetRideByID", mock.Anything, rideID).Return(ride, nil)

	review, err := uc.Create(context.Background(), uuid.New(), &models.CreateReviewRequest{
		RideID: rideID,
		Rating: 4,
	})

	assert.Nil(t, review)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "Only completed rides")
}

func TestCreateReview_DriverCannotReviewOwnRide(t *testing.T) {
	_, _, mockRides, uc := newTestReviewUC()

	rideID := uuid.New()
	driverID := uuid.New()

	mockRides.On("GetRideByID", mock.Anything, rideID).Return(completedRide(rideID, driverID), nil)

	review, err := uc.Create(context.Background(), driverID, &models.CreateReviewRequest{
		RideID: rideID,
		Rating: 5,
	})

	assert.Nil(t, review)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 403, ve.Code)
}

func TestCreateReview_RequiresConfirmedReservation(t *testing.T) {
	mockRepo, _, mockRides, uc := newTestReviewUC()

	rideID := uuid.New()
	reviewerID := uuid.New()

	mockRides.On("GetRideByID", mock.Anything, rideID).Return(completedRide(rideID, uuid.New()), nil)
	mockRepo.On("HasConfirmedReservation", mock.Anything, rideID, reviewerID).Return(false, nil)

	review, err := uc.Create(context.Background(), reviewerID, &models.CreateReviewRequest{
		RideID: rideID,
		Rating: 5,
	})

	assert.Nil(t, review)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 403, ve.Code)
	assert.Contains(t, ve.Message, "confirmed reservation")
}

func TestCreateReview_Duplicate(t *testing.T) {
	mockRepo, _, mockRides, uc := newTestReviewUC()

	rideID := uuid.New()
	reviewerID := uuid.New()

	mockRides.On("GetRideByID", mock.Anything, rideID).Return(completedRide(rideID, uuid.New()), nil)
	mockRepo.On("HasConfirmedReservation", mock.Anything, rideID, reviewerID).Return(true, nil)
	mockRepo.On("GetByRideAndReviewer", mock.Anything, rideID, reviewerID).
		Return(&models.Review{ID: uuid.New()}, nil)

	review, err := uc.Create(context.Background(), reviewerID, &models.CreateReviewRequest{
		RideID: rideID,
		Rating: 5,
	})

	assert.Nil(t, review)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 409, ve.Code)
}

func TestUpdateReview_NotOwner(t *testing.T) {
	mockRepo, _, _, uc := newTestReviewUC()

	reviewID := uuid.New()
	mockRepo.On("GetReviewByID", mock.Anything, reviewID).
		Return(&models.Review{ID: reviewID, ReviewerID: uuid.New()}, nil)

	rating := 3
	review, err := uc.Update(context.Background(), reviewID, uuid.New(), &models.UpdateReviewRequest{Rating: &rating})

	assert.Nil(t, review)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 403, ve.Code)
}

func TestDeleteReview_PublishesForRecalculation(t *testing.T) {
	mockRepo, mockGW, _, uc := newTestReviewUC()

	reviewID := uuid.New()
	reviewerID := uuid.New()
	revieweeID := uuid.New()

	mockRepo.On("GetReviewByID", mock.Anything, reviewID).
		Return(&models.Review{ID: reviewID, ReviewerID: reviewerID, RevieweeID: revieweeID}, nil)
	mockRepo.On("DeleteReview", mock.Anything, reviewID).Return(nil)
	mockGW.On("PublishReviewDeleted", mock.Anything, mock.MatchedBy(func(event models.ReviewEvent) bool {
		return event.RevieweeID == revieweeID
	})).Return(nil)

	err := uc.Delete(context.Background(), reviewID, reviewerID)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockGW.AssertExpectations(t)
}
