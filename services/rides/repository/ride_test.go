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
	"github.com/caronalabs/carona/services/rides"
	"github.com/caronalabs/carona/services/rides/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestCreateRide_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(db)

	now := time.Now()
	ride := &models.Ride{
		ID:             uuid.New(),
		DriverID:       uuid.New(),
		VehicleID:      uuid.New(),
		StartAddressID: uuid.New(),
		EndAddressID:   uuid.New(),
		StartTime:      now.Add(24 * time.Hour),
		Price:          25.0,
		AvailableSeats: 3,
		Status:         models.RideStatusScheduled,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WithArgs(ride.ID, ride.DriverID, ride.VehicleID, ride.StartAddressID, ride.EndAddressID,
			sqlmock.AnyArg(), ride.Price, ride.AvailableSeats, ride.Preferences, ride.Status,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRide(context.Background(), ride)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRideByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(db)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ride_id, driver_id, vehicle_id")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id"}))

	ride, err := repo.GetRideByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, ride)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(db)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET status = $3")).
		WithArgs(id, models.RideStatusScheduled, models.RideStatusInProgress).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, models.RideStatusScheduled, models.RideStatusInProgress)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_ConcurrentTransitionLoses(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(db)

	id := uuid.New()

	// The guarded update matches no row when the status changed under us
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET status = $3")).
		WithArgs(id, models.RideStatusScheduled, models.RideStatusCancelled).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), id, models.RideStatusScheduled, models.RideStatusCancelled)
	assert.ErrorIs(t, err, rides.ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteRide_NotInProgress(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(db)

	id := uuid.New()
	endTime := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET status = $2, end_time = $3")).
		WithArgs(id, models.RideStatusCompleted, endTime, models.RideStatusInProgress).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CompleteRide(context.Background(), id, endTime)
	assert.ErrorIs(t, err, rides.ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasConflictingRide_ExcludesGivenRide(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(db)

	driverID := uuid.New()
	excludeID := uuid.New()
	windowStart := time.Now()
	windowEnd := windowStart.Add(4 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(")).
		WithArgs(driverID, windowStart, windowEnd, &excludeID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	conflict, err := repo.HasConflictingRide(context.Background(), driverID, windowStart, windowEnd, &excludeID)
	assert.NoError(t, err)
	assert.False(t, conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRideFields_OnlyTouchedColumns(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(db)

	id := uuid.New()
	price := 30.0

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET updated_at = now(), price = $2 WHERE ride_id = $1")).
		WithArgs(id, price).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRideFields(context.Background(), id, &models.RideUpdateFields{Price: &price})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountScheduled_CaseSensitiveCityMatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(db)

	// City filters are plain LIKE: "campinas" must not match "Campinas"
	mock.ExpectQuery(regexp.QuoteMeta("sa.city LIKE '%' || $1 || '%'")).
		WithArgs("campinas", "").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountScheduled(context.Background(), "campinas", "")
	assert.NoError(t, err)
	assert.Zero(t, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountConfirmedReservations(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(db)

	rideID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations")).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountConfirmedReservations(context.Background(), rideID)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
