package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/services/reservations"
	"github.com/caronalabs/carona/services/reservations/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func pendingReservation() *models.Reservation {
	now := time.Now()
	return &models.Reservation{
		ID:            uuid.New(),
		RideID:        uuid.New(),
		PassengerID:   uuid.New(),
		Status:        models.ReservationStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestCreateReservation_ClaimsSeatAndInserts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewReservationRepository(db)

	r := pendingReservation()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET available_seats = available_seats - 1")).
		WithArgs(r.RideID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations")).
		WithArgs(r.ID, r.RideID, r.PassengerID, r.Status, r.PaymentStatus, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateReservation(context.Background(), r)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservation_NoSeatLeft(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewReservationRepository(db)

	r := pendingReservation()

	// The conditional decrement matches no row: the ride sold out or
	// left SCHEDULED concurrently. Nothing is inserted.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET available_seats = available_seats - 1")).
		WithArgs(r.RideID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CreateReservation(context.Background(), r)
	assert.ErrorIs(t, err, reservations.ErrNoSeatsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmReservation_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewReservationRepository(db)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = 'CONFIRMED', payment_status = 'PAID'")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ConfirmReservation(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmReservation_NotPending(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewReservationRepository(db)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = 'CONFIRMED', payment_status = 'PAID'")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ConfirmReservation(context.Background(), id)
	assert.ErrorIs(t, err, reservations.ErrNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelReservation_RestoresSeat(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewReservationRepository(db)

	id := uuid.New()
	rideID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = 'CANCELLED'")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET available_seats = available_seats + 1")).
		WithArgs(rideID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CancelReservation(context.Background(), id, rideID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelReservation_AlreadyCancelled(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewReservationRepository(db)

	id := uuid.New()
	rideID := uuid.New()

	// A second cancel matches no row and must not restore another seat
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = 'CANCELLED'")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CancelReservation(context.Background(), id, rideID)
	assert.ErrorIs(t, err, reservations.ErrAlreadyCancelled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelAllByRide_ReturnsCancelledRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewReservationRepository(db)

	rideID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"reservation_id", "ride_id", "passenger_id", "status", "payment_status", "created_at", "updated_at"}).
		AddRow(uuid.New(), rideID, uuid.New(), "CANCELLED", "PENDING", now, now).
		AddRow(uuid.New(), rideID, uuid.New(), "CANCELLED", "PAID", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE reservations SET status = 'CANCELLED'")).
		WithArgs(rideID).
		WillReturnRows(rows)

	cancelled, err := repo.CancelAllByRide(context.Background(), rideID)
	assert.NoError(t, err)
	assert.Len(t, cancelled, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReservationByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewReservationRepository(db)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT reservation_id, ride_id, passenger_id")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"reservation_id"}))

	reservation, err := repo.GetReservationByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, reservation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasActiveReservation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewReservationRepository(db)

	rideID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(")).
		WithArgs(rideID, passengerID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	active, err := repo.HasActiveReservation(context.Background(), rideID, passengerID)
	assert.NoError(t, err)
	assert.True(t, active)
	assert.NoError(t, mock.ExpectationsWereMet())
}
