package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/caronalabs/carona/internal/pkg/apperr"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/services/reservations"
	"github.com/caronalabs/carona/services/reservations/mocks"
)

type reservationMocks struct {
	repo  *mocks.MockReservationRepo
	gw    *mocks.MockReservationGW
	rides *mocks.MockRideReader
	users *mocks.MockUserReader
}

func newReservationUC(ctrl *gomock.Controller) (reservations.ReservationUC, reservationMocks) {
	m := reservationMocks{
		repo:  mocks.NewMockReservationRepo(ctrl),
		gw:    mocks.NewMockReservationGW(ctrl),
		rides: mocks.NewMockRideReader(ctrl),
		users: mocks.NewMockUserReader(ctrl),
	}
	return NewReservationUC(&models.Config{}, m.repo, m.gw, m.rides, m.users), m
}

func activePassenger(id uuid.UUID) *models.User {
	return &models.User{
		ID:     id,
		Name:   "Test Passenger",
		Email:  "passenger@example.com",
		Active: true,
	}
}

func scheduledRide(id, driverID uuid.UUID, seats int) *models.Ride {
	return &models.Ride{
		ID:             id,
		DriverID:       driverID,
		Status:         models.RideStatusScheduled,
		AvailableSeats: seats,
	}
}

func TestCreateReservation_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	rideID := uuid.New()
	passengerID := uuid.New()

	m.users.EXPECT().GetUserByID(gomock.Any(), passengerID).Return(activePassenger(passengerID), nil)
	m.rides.EXPECT().GetRideByID(gomock.Any(), rideID).Return(scheduledRide(rideID, uuid.New(), 2), nil)
	m.repo.EXPECT().HasActiveReservation(gomock.Any(), rideID, passengerID).Return(false, nil)
	m.repo.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *models.Reservation) error {
			assert.Equal(t, models.ReservationStatusPending, r.Status)
			assert.Equal(t, models.PaymentStatusPending, r.PaymentStatus)
			return nil
		})
	m.gw.EXPECT().PublishReservationCreated(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	reservation, err := uc.Create(context.Background(), rideID, passengerID)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, reservation)
	assert.Equal(t, rideID, reservation.RideID)
	assert.Equal(t, passengerID, reservation.PassengerID)
	assert.Equal(t, models.ReservationStatusPending, reservation.Status)
}

func TestCreateReservation_OwnRide(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	rideID := uuid.New()
	driverID := uuid.New()

	m.users.EXPECT().GetUserByID(gomock.Any(), driverID).Return(activePassenger(driverID), nil)
	m.rides.EXPECT().GetRideByID(gomock.Any(), rideID).Return(scheduledRide(rideID, driverID, 2), nil)

	// Act
	reservation, err := uc.Create(context.Background(), rideID, driverID)

	// Assert
	assert.Nil(t, reservation)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "your own ride")
}

func TestCreateReservation_RideNotOpen(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	rideID := uuid.New()
	passengerID := uuid.New()
	ride := scheduledRide(rideID, uuid.New(), 2)
	ride.Status = models.RideStatusCancelled

	m.users.EXPECT().GetUserByID(gomock.Any(), passengerID).Return(activePassenger(passengerID), nil)
	m.rides.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)

	// Act
	reservation, err := uc.Create(context.Background(), rideID, passengerID)

	// Assert
	assert.Nil(t, reservation)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "not open for reservations")
}

func TestCreateReservation_SoldOut(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	rideID := uuid.New()
	passengerID := uuid.New()

	m.users.EXPECT().GetUserByID(gomock.Any(), passengerID).Return(activePassenger(passengerID), nil)
	m.rides.EXPECT().GetRideByID(gomock.Any(), rideID).Return(scheduledRide(rideID, uuid.New(), 0), nil)

	// Act
	reservation, err := uc.Create(context.Background(), rideID, passengerID)

	// Assert
	assert.Nil(t, reservation)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "No seats available")
}

func TestCreateReservation_DuplicateActive(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	rideID := uuid.New()
	passengerID := uuid.New()

	m.users.EXPECT().GetUserByID(gomock.Any(), passengerID).Return(activePassenger(passengerID), nil)
	m.rides.EXPECT().GetRideByID(gomock.Any(), rideID).Return(scheduledRide(rideID, uuid.New(), 2), nil)
	m.repo.EXPECT().HasActiveReservation(gomock.Any(), rideID, passengerID).Return(true, nil)

	// Act
	reservation, err := uc.Create(context.Background(), rideID, passengerID)

	// Assert
	assert.Nil(t, reservation)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 409, ve.Code)
}

func TestCreateReservation_LostRaceForLastSeat(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	rideID := uuid.New()
	passengerID := uuid.New()

	// The read sees one seat left, but the conditional decrement finds
	// none: another passenger claimed it in between.
	m.users.EXPECT().GetUserByID(gomock.Any(), passengerID).Return(activePassenger(passengerID), nil)
	m.rides.EXPECT().GetRideByID(gomock.Any(), rideID).Return(scheduledRide(rideID, uuid.New(), 1), nil)
	m.repo.EXPECT().HasActiveReservation(gomock.Any(), rideID, passengerID).Return(false, nil)
	m.repo.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(reservations.ErrNoSeatsAvailable)

	// Act
	reservation, err := uc.Create(context.Background(), rideID, passengerID)

	// Assert
	assert.Nil(t, reservation)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "No seats available")
}

func TestConfirmReservation_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	reservationID := uuid.New()
	rideID := uuid.New()
	passengerID := uuid.New()

	pending := &models.Reservation{
		ID:            reservationID,
		RideID:        rideID,
		PassengerID:   passengerID,
		Status:        models.ReservationStatusPending,
		PaymentStatus: models.PaymentStatusPending,
	}

	m.repo.EXPECT().GetReservationByID(gomock.Any(), reservationID).Return(pending, nil)
	m.rides.EXPECT().GetRideByID(gomock.Any(), rideID).Return(scheduledRide(rideID, uuid.New(), 1), nil)
	m.repo.EXPECT().ConfirmReservation(gomock.Any(), reservationID).Return(nil)
	m.gw.EXPECT().PublishReservationConfirmed(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	confirmed, err := uc.Confirm(context.Background(), reservationID, passengerID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, confirmed.Status)
	assert.Equal(t, models.PaymentStatusPaid, confirmed.PaymentStatus)
}

func TestConfirmReservation_NoSeatsLeft(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	reservationID := uuid.New()
	rideID := uuid.New()
	passengerID := uuid.New()

	pending := &models.Reservation{
		ID:          reservationID,
		RideID:      rideID,
		PassengerID: passengerID,
		Status:      models.ReservationStatusPending,
	}

	m.repo.EXPECT().GetReservationByID(gomock.Any(), reservationID).Return(pending, nil)
	m.rides.EXPECT().GetRideByID(gomock.Any(), rideID).Return(scheduledRide(rideID, uuid.New(), 0), nil)

	// Act
	confirmed, err := uc.Confirm(context.Background(), reservationID, passengerID)

	// Assert
	assert.Nil(t, confirmed)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "No seats available")
}

func TestConfirmReservation_Cancelled(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	reservationID := uuid.New()
	passengerID := uuid.New()

	cancelled := &models.Reservation{
		ID:          reservationID,
		RideID:      uuid.New(),
		PassengerID: passengerID,
		Status:      models.ReservationStatusCancelled,
	}

	m.repo.EXPECT().GetReservationByID(gomock.Any(), reservationID).Return(cancelled, nil)

	// Act
	confirmed, err := uc.Confirm(context.Background(), reservationID, passengerID)

	// Assert
	assert.Nil(t, confirmed)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "cancelled and cannot be confirmed")
}

func TestConfirmReservation_NotOwner(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	reservationID := uuid.New()

	pending := &models.Reservation{
		ID:          reservationID,
		RideID:      uuid.New(),
		PassengerID: uuid.New(),
		Status:      models.ReservationStatusPending,
	}

	m.repo.EXPECT().GetReservationByID(gomock.Any(), reservationID).Return(pending, nil)

	// Act
	confirmed, err := uc.Confirm(context.Background(), reservationID, uuid.New())

	// Assert
	assert.Nil(t, confirmed)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 403, ve.Code)
}

func TestConfirmReservation_RideNoLongerScheduled(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	reservationID := uuid.New()
	rideID := uuid.New()
	passengerID := uuid.New()

	pending := &models.Reservation{
		ID:          reservationID,
		RideID:      rideID,
		PassengerID: passengerID,
		Status:      models.ReservationStatusPending,
	}
	ride := scheduledRide(rideID, uuid.New(), 1)
	ride.Status = models.RideStatusCancelled

	m.repo.EXPECT().GetReservationByID(gomock.Any(), reservationID).Return(pending, nil)
	m.rides.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)

	// Act
	confirmed, err := uc.Confirm(context.Background(), reservationID, passengerID)

	// Assert
	assert.Nil(t, confirmed)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "not open for reservations")
}

func TestCancelReservation_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	reservationID := uuid.New()
	rideID := uuid.New()
	passengerID := uuid.New()

	pending := &models.Reservation{
		ID:          reservationID,
		RideID:      rideID,
		PassengerID: passengerID,
		Status:      models.ReservationStatusPending,
	}

	m.repo.EXPECT().GetReservationByID(gomock.Any(), reservationID).Return(pending, nil)
	m.repo.EXPECT().CancelReservation(gomock.Any(), reservationID, rideID).Return(nil)
	m.gw.EXPECT().PublishReservationCancelled(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	err := uc.Cancel(context.Background(), reservationID, passengerID)

	// Assert
	assert.NoError(t, err)
}

func TestCancelReservation_AlreadyCancelled(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	reservationID := uuid.New()
	rideID := uuid.New()
	passengerID := uuid.New()

	cancelled := &models.Reservation{
		ID:          reservationID,
		RideID:      rideID,
		PassengerID: passengerID,
		Status:      models.ReservationStatusCancelled,
	}

	m.repo.EXPECT().GetReservationByID(gomock.Any(), reservationID).Return(cancelled, nil)
	m.repo.EXPECT().CancelReservation(gomock.Any(), reservationID, rideID).Return(reservations.ErrAlreadyCancelled)

	// Act
	err := uc.Cancel(context.Background(), reservationID, passengerID)

	// Assert
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "already cancelled")
}

func TestCancelAllForRide_PublishesEachCancellation(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	rideID := uuid.New()
	cancelled := []*models.Reservation{
		{ID: uuid.New(), RideID: rideID, PassengerID: uuid.New(), Status: models.ReservationStatusCancelled},
		{ID: uuid.New(), RideID: rideID, PassengerID: uuid.New(), Status: models.ReservationStatusCancelled},
	}

	m.repo.EXPECT().CancelAllByRide(gomock.Any(), rideID).Return(cancelled, nil)
	m.gw.EXPECT().PublishReservationCancelled(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// Act
	err := uc.CancelAllForRide(context.Background(), rideID)

	// Assert
	assert.NoError(t, err)
}

func TestListByRide_OnlyDriver(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReservationUC(ctrl)

	rideID := uuid.New()
	driverID := uuid.New()

	m.rides.EXPECT().GetRideByID(gomock.Any(), rideID).Return(scheduledRide(rideID, driverID, 2), nil)

	// Act
	list, err := uc.ListByRide(context.Background(), rideID, uuid.New(), false)

	// Assert
	assert.Nil(t, list)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 403, ve.Code)
}
