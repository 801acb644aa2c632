package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/services/reservations"
)

// ReservationRepo provides reservation data access on PostgreSQL
type ReservationRepo struct {
	db *sqlx.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *sqlx.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

const reservationColumns = `reservation_id, ride_id, passenger_id, status, payment_status, created_at, updated_at`

// CreateReservation claims one seat and inserts the reservation in a
// single transaction. The seat decrement is conditional on the ride
// still being scheduled with a seat left, so concurrent claims for the
// last seat cannot both succeed.
func (r *ReservationRepo) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	claim := `
		UPDATE rides SET available_seats = available_seats - 1, updated_at = now()
		WHERE ride_id = $1 AND status = 'SCHEDULED' AND available_seats > 0
	`
	result, err := tx.ExecContext(ctx, claim, reservation.RideID)
	if err != nil {
		return fmt.Errorf("failed to claim seat: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return reservations.ErrNoSeatsAvailable
	}

	insert := `
		INSERT INTO reservations (reservation_id, ride_id, passenger_id, status, payment_status, created_at, updated_at)
		VALUES (:reservation_id, :ride_id, :passenger_id, :status, :payment_status, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, insert, reservation); err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	return tx.Commit()
}

// ConfirmReservation transitions PENDING to CONFIRMED and settles the payment
func (r *ReservationRepo) ConfirmReservation(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE reservations SET status = 'CONFIRMED', payment_status = 'PAID', updated_at = now()
		WHERE reservation_id = $1 AND status = 'PENDING'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to confirm reservation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return reservations.ErrNotPending
	}

	return nil
}

// CancelReservation cancels the reservation and returns its seat to the
// ride in a single transaction. The cancel is conditional on the
// reservation not already being cancelled, so a double cancel never
// restores two seats.
func (r *ReservationRepo) CancelReservation(ctx context.Context, id uuid.UUID, rideID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	cancel := `
		UPDATE reservations SET status = 'CANCELLED', updated_at = now()
		WHERE reservation_id = $1 AND status <> 'CANCELLED'
	`
	result, err := tx.ExecContext(ctx, cancel, id)
	if err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return reservations.ErrAlreadyCancelled
	}

	restore := `UPDATE rides SET available_seats = available_seats + 1, updated_at = now() WHERE ride_id = $1`
	if _, err := tx.ExecContext(ctx, restore, rideID); err != nil {
		return fmt.Errorf("failed to restore seat: %w", err)
	}

	return tx.Commit()
}

// CancelAllByRide cancels every remaining reservation on the ride and
// returns the ones that were cancelled. Seats on the cancelled ride are
// left alone.
func (r *ReservationRepo) CancelAllByRide(ctx context.Context, rideID uuid.UUID) ([]*models.Reservation, error) {
	query := fmt.Sprintf(`
		UPDATE reservations SET status = 'CANCELLED', updated_at = now()
		WHERE ride_id = $1 AND status <> 'CANCELLED'
		RETURNING %s
	`, reservationColumns)

	cancelled := []*models.Reservation{}
	if err := r.db.SelectContext(ctx, &cancelled, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to cancel ride reservations: %w", err)
	}

	return cancelled, nil
}

// GetReservationByID retrieves a reservation by id, returning nil when absent
func (r *ReservationRepo) GetReservationByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	query := fmt.Sprintf(`SELECT %s FROM reservations WHERE reservation_id = $1`, reservationColumns)

	var reservation models.Reservation
	if err := r.db.GetContext(ctx, &reservation, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return &reservation, nil
}

// HasActiveReservation reports whether the passenger holds a
// non-cancelled reservation on the ride.
func (r *ReservationRepo) HasActiveReservation(ctx context.Context, rideID, passengerID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM reservations
			WHERE ride_id = $1 AND passenger_id = $2 AND status <> 'CANCELLED'
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, rideID, passengerID); err != nil {
		return false, fmt.Errorf("failed to check active reservation: %w", err)
	}

	return exists, nil
}

// ListByPassenger retrieves a passenger's reservations, newest first
func (r *ReservationRepo) ListByPassenger(ctx context.Context, passengerID uuid.UUID, limit, offset int) ([]*models.Reservation, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM reservations
		WHERE passenger_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, reservationColumns)

	list := []*models.Reservation{}
	if err := r.db.SelectContext(ctx, &list, query, passengerID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	return list, nil
}

// CountByPassenger counts a passenger's reservations
func (r *ReservationRepo) CountByPassenger(ctx context.Context, passengerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE passenger_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, passengerID); err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	return count, nil
}

// ListByRide retrieves a ride's reservations hydrated with passenger
// profiles, optionally restricted to confirmed ones.
func (r *ReservationRepo) ListByRide(ctx context.Context, rideID uuid.UUID, confirmedOnly bool) ([]*models.Reservation, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM reservations
		WHERE ride_id = $1
		AND ($2 = false OR status = 'CONFIRMED')
		ORDER BY created_at ASC
	`, reservationColumns)

	list := []*models.Reservation{}
	if err := r.db.SelectContext(ctx, &list, query, rideID, confirmedOnly); err != nil {
		return nil, fmt.Errorf("failed to list ride reservations: %w", err)
	}

	for _, reservation := range list {
		passenger, err := r.getPassenger(ctx, reservation.PassengerID)
		if err != nil {
			return nil, err
		}
		reservation.Passenger = passenger
	}

	return list, nil
}

// getPassenger loads the public passenger profile, password column excluded
func (r *ReservationRepo) getPassenger(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, name, email, is_driver, active, average_rating, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}

	return &user, nil
}
