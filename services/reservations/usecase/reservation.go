package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/apperr"
	"github.com/caronalabs/carona/internal/pkg/logger"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
	"github.com/caronalabs/carona/services/reservations"
)

type reservationUC struct {
	cfg             *models.Config
	reservationRepo reservations.ReservationRepo
	reservationGW   reservations.ReservationGW
	rideReader      reservations.RideReader
	userReader      reservations.UserReader
}

// NewReservationUC creates a new reservation use case
func NewReservationUC(
	cfg *models.Config,
	reservationRepo reservations.ReservationRepo,
	reservationGW reservations.ReservationGW,
	rideReader reservations.RideReader,
	userReader reservations.UserReader,
) reservations.ReservationUC {
	return &reservationUC{
		cfg:             cfg,
		reservationRepo: reservationRepo,
		reservationGW:   reservationGW,
		rideReader:      rideReader,
		userReader:      userReader,
	}
}

// Create claims a seat on a scheduled ride for the passenger. The seat
// decrement and the reservation insert commit together, so the ride can
// never be oversold even under concurrent requests.
func (uc *reservationUC) Create(ctx context.Context, rideID, passengerID uuid.UUID) (*models.Reservation, error) {
	passenger, err := uc.userReader.GetUserByID(ctx, passengerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}
	if passenger == nil || !passenger.Active {
		return nil, apperr.NotFound("Passenger account not found.")
	}

	ride, err := uc.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID == passengerID {
		return nil, apperr.New("You cannot reserve a seat on your own ride.")
	}
	if ride.Status != models.RideStatusScheduled {
		return nil, apperr.New("Ride is not open for reservations.")
	}
	if ride.AvailableSeats < 1 {
		return nil, apperr.New("No seats available for this ride.")
	}

	active, err := uc.reservationRepo.HasActiveReservation(ctx, rideID, passengerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing reservation: %w", err)
	}
	if active {
		return nil, apperr.Conflict("You already have a reservation on this ride.")
	}

	now := time.Now()
	reservation := &models.Reservation{
		ID:            uuid.New(),
		RideID:        rideID,
		PassengerID:   passengerID,
		Status:        models.ReservationStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.reservationRepo.CreateReservation(ctx, reservation); err != nil {
		if errors.Is(err, reservations.ErrNoSeatsAvailable) {
			return nil, apperr.New("No seats available for this ride.")
		}
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	uc.publish(ctx, uc.reservationGW.PublishReservationCreated, reservation, "created")
	return reservation, nil
}

// Confirm transitions the passenger's pending reservation to confirmed
// and settles its payment. The ride must still be scheduled with a seat
// accounted for.
func (uc *reservationUC) Confirm(ctx context.Context, reservationID, requesterID uuid.UUID) (*models.Reservation, error) {
	reservation, err := uc.getOwnedReservation(ctx, reservationID, requesterID)
	if err != nil {
		return nil, err
	}
	if reservation.Status == models.ReservationStatusCancelled {
		return nil, apperr.New("Reservation is cancelled and cannot be confirmed.")
	}
	if reservation.Status != models.ReservationStatusPending {
		return nil, apperr.New("Reservation is not pending.")
	}

	ride, err := uc.getRide(ctx, reservation.RideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusScheduled {
		return nil, apperr.New("Ride is not open for reservations.")
	}
	// The seat was claimed at creation; re-checked here against counter
	// drift.
	if ride.AvailableSeats <= 0 {
		return nil, apperr.New("No seats available for this ride.")
	}

	if err := uc.reservationRepo.ConfirmReservation(ctx, reservationID); err != nil {
		if errors.Is(err, reservations.ErrNotPending) {
			return nil, apperr.New("Reservation is not pending.")
		}
		return nil, fmt.Errorf("failed to confirm reservation: %w", err)
	}

	reservation.Status = models.ReservationStatusConfirmed
	reservation.PaymentStatus = models.PaymentStatusPaid

	uc.publish(ctx, uc.reservationGW.PublishReservationConfirmed, reservation, "confirmed")
	return reservation, nil
}

// Cancel cancels the passenger's reservation and returns its seat to
// the ride.
func (uc *reservationUC) Cancel(ctx context.Context, reservationID, requesterID uuid.UUID) error {
	reservation, err := uc.getOwnedReservation(ctx, reservationID, requesterID)
	if err != nil {
		return err
	}

	if err := uc.reservationRepo.CancelReservation(ctx, reservationID, reservation.RideID); err != nil {
		if errors.Is(err, reservations.ErrAlreadyCancelled) {
			return apperr.New("Reservation is already cancelled.")
		}
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	reservation.Status = models.ReservationStatusCancelled
	uc.publish(ctx, uc.reservationGW.PublishReservationCancelled, reservation, "cancelled")
	return nil
}

// CancelAllForRide cancels every remaining reservation of a cancelled
// ride and notifies each passenger. Seats on the dead ride stay as they
// are.
func (uc *reservationUC) CancelAllForRide(ctx context.Context, rideID uuid.UUID) error {
	cancelled, err := uc.reservationRepo.CancelAllByRide(ctx, rideID)
	if err != nil {
		return fmt.Errorf("failed to cancel ride reservations: %w", err)
	}

	for _, reservation := range cancelled {
		uc.publish(ctx, uc.reservationGW.PublishReservationCancelled, reservation, "cancelled")
	}

	logger.Info("Cancelled reservations for cancelled ride",
		logger.String("ride_id", rideID.String()),
		logger.Int("count", len(cancelled)))
	return nil
}

// ListOwn retrieves the passenger's reservations, newest first
func (uc *reservationUC) ListOwn(ctx context.Context, passengerID uuid.UUID, p utils.Pagination) ([]*models.Reservation, int64, error) {
	total, err := uc.reservationRepo.CountByPassenger(ctx, passengerID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	list, err := uc.reservationRepo.ListByPassenger(ctx, passengerID, p.PerPage, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reservations: %w", err)
	}

	return list, total, nil
}

// ListByRide lists a ride's reservations for its driver
func (uc *reservationUC) ListByRide(ctx context.Context, rideID, requesterID uuid.UUID, confirmedOnly bool) ([]*models.Reservation, error) {
	ride, err := uc.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != requesterID {
		return nil, apperr.Forbidden("Only the ride's driver can list its reservations.")
	}

	list, err := uc.reservationRepo.ListByRide(ctx, rideID, confirmedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list ride reservations: %w", err)
	}

	return list, nil
}

func (uc *reservationUC) getRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideReader.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	if ride == nil {
		return nil, apperr.NotFound("Ride not found.")
	}
	return ride, nil
}

func (uc *reservationUC) getOwnedReservation(ctx context.Context, reservationID, requesterID uuid.UUID) (*models.Reservation, error) {
	reservation, err := uc.reservationRepo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	if reservation == nil {
		return nil, apperr.NotFound("Reservation not found.")
	}
	if reservation.PassengerID != requesterID {
		return nil, apperr.Forbidden("You do not own this reservation.")
	}
	return reservation, nil
}

// publish failures never fail the reservation operation itself
func (uc *reservationUC) publish(ctx context.Context, publish func(context.Context, models.ReservationEvent) error, reservation *models.Reservation, action string) {
	event := models.ReservationEvent{
		Reservation: *reservation,
		Timestamp:   time.Now(),
	}
	if err := publish(ctx, event); err != nil {
		logger.Warn("Failed to publish reservation event",
			logger.String("action", action),
			logger.String("reservation_id", reservation.ID.String()),
			logger.Err(err))
	}
}
