package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/services/rides"
)

// RideRepo provides ride data access on PostgreSQL
type RideRepo struct {
	db *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(db *sqlx.DB) *RideRepo {
	return &RideRepo{db: db}
}

const rideColumns = `ride_id, driver_id, vehicle_id, start_address_id, end_address_id,
	start_time, end_time, price, available_seats, preferences, status, created_at, updated_at`

// CreateRide inserts a new ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (ride_id, driver_id, vehicle_id, start_address_id, end_address_id,
			start_time, price, available_seats, preferences, status, created_at, updated_at)
		VALUES (:ride_id, :driver_id, :vehicle_id, :start_address_id, :end_address_id,
			:start_time, :price, :available_seats, :preferences, :status, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, ride); err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}

	return nil
}

// GetRideByID retrieves a bare ride row by id, returning nil when absent
func (r *RideRepo) GetRideByID(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	query := fmt.Sprintf(`SELECT %s FROM rides WHERE ride_id = $1`, rideColumns)

	var ride models.Ride
	if err := r.db.GetContext(ctx, &ride, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	return &ride, nil
}

// GetRideWithDetails retrieves a ride hydrated with its driver and both
// addresses, returning nil when absent.
func (r *RideRepo) GetRideWithDetails(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	ride, err := r.GetRideByID(ctx, id)
	if err != nil || ride == nil {
		return ride, err
	}

	if err := r.hydrate(ctx, ride); err != nil {
		return nil, err
	}

	return ride, nil
}

// HasConflictingRide reports whether the driver has another
// non-terminal ride starting inside the window.
func (r *RideRepo) HasConflictingRide(ctx context.Context, driverID uuid.UUID, windowStart, windowEnd time.Time, excludeRideID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM rides
			WHERE driver_id = $1
			AND status IN ('SCHEDULED', 'IN_PROGRESS')
			AND start_time BETWEEN $2 AND $3
			AND ($4::uuid IS NULL OR ride_id <> $4)
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, driverID, windowStart, windowEnd, excludeRideID); err != nil {
		return false, fmt.Errorf("failed to check conflicting rides: %w", err)
	}

	return exists, nil
}

// UpdateRideFields applies a partial column update; nil fields are left
// untouched.
func (r *RideRepo) UpdateRideFields(ctx context.Context, id uuid.UUID, fields *models.RideUpdateFields) error {
	sets := []string{"updated_at = now()"}
	args := []interface{}{id}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.VehicleID != nil {
		add("vehicle_id", *fields.VehicleID)
	}
	if fields.StartAddressID != nil {
		add("start_address_id", *fields.StartAddressID)
	}
	if fields.EndAddressID != nil {
		add("end_address_id", *fields.EndAddressID)
	}
	if fields.StartTime != nil {
		add("start_time", *fields.StartTime)
	}
	if fields.Price != nil {
		add("price", *fields.Price)
	}
	if fields.AvailableSeats != nil {
		add("available_seats", *fields.AvailableSeats)
	}
	if fields.Preferences != nil {
		add("preferences", *fields.Preferences)
	}

	query := fmt.Sprintf(`UPDATE rides SET %s WHERE ride_id = $1`, strings.Join(sets, ", "))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}

	return nil
}

// UpdateStatus transitions the ride between statuses, guarded by the
// expected current status so concurrent transitions lose cleanly.
func (r *RideRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.RideStatus) error {
	query := `UPDATE rides SET status = $3, updated_at = now() WHERE ride_id = $1 AND status = $2`

	result, err := r.db.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("failed to update ride status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return rides.ErrStatusConflict
	}

	return nil
}

// CompleteRide transitions IN_PROGRESS to COMPLETED and stamps the end time
func (r *RideRepo) CompleteRide(ctx context.Context, id uuid.UUID, endTime time.Time) error {
	query := `
		UPDATE rides SET status = $2, end_time = $3, updated_at = now()
		WHERE ride_id = $1 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, id, models.RideStatusCompleted, endTime, models.RideStatusInProgress)
	if err != nil {
		return fmt.Errorf("failed to complete ride: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return rides.ErrStatusConflict
	}

	return nil
}

// CountConfirmedReservations counts the ride's confirmed reservations
func (r *RideRepo) CountConfirmedReservations(ctx context.Context, rideID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE ride_id = $1 AND status = 'CONFIRMED'`

	var count int
	if err := r.db.GetContext(ctx, &count, query, rideID); err != nil {
		return 0, fmt.Errorf("failed to count confirmed reservations: %w", err)
	}

	return count, nil
}

// ListByDriver retrieves a driver's rides, newest start first
func (r *RideRepo) ListByDriver(ctx context.Context, driverID uuid.UUID, limit, offset int) ([]*models.Ride, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM rides
		WHERE driver_id = $1
		ORDER BY start_time DESC
		LIMIT $2 OFFSET $3
	`, rideColumns)

	list := []*models.Ride{}
	if err := r.db.SelectContext(ctx, &list, query, driverID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}

	for _, ride := range list {
		if err := r.hydrateAddresses(ctx, ride); err != nil {
			return nil, err
		}
	}

	return list, nil
}

// CountByDriver counts a driver's rides
func (r *RideRepo) CountByDriver(ctx context.Context, driverID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM rides WHERE driver_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, driverID); err != nil {
		return 0, fmt.Errorf("failed to count rides: %w", err)
	}

	return count, nil
}

// SearchScheduled lists future scheduled rides matching the city
// filters, soonest first. Filters are case-sensitive substring matches;
// empty filters match everything.
func (r *RideRepo) SearchScheduled(ctx context.Context, startCity, destinationCity string, limit, offset int) ([]*models.Ride, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM rides r
		JOIN addresses sa ON sa.id = r.start_address_id
		JOIN addresses ea ON ea.id = r.end_address_id
		WHERE r.status = 'SCHEDULED'
		AND r.start_time > now()
		AND ($1 = '' OR sa.city LIKE '%%' || $1 || '%%')
		AND ($2 = '' OR ea.city LIKE '%%' || $2 || '%%')
		ORDER BY r.start_time ASC
		LIMIT $3 OFFSET $4
	`, prefixColumns("r", rideColumns))

	list := []*models.Ride{}
	if err := r.db.SelectContext(ctx, &list, query, startCity, destinationCity, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to search rides: %w", err)
	}

	for _, ride := range list {
		if err := r.hydrate(ctx, ride); err != nil {
			return nil, err
		}
	}

	return list, nil
}

// CountScheduled counts future scheduled rides matching the city filters
func (r *RideRepo) CountScheduled(ctx context.Context, startCity, destinationCity string) (int64, error) {
	query := `
		SELECT COUNT(*) FROM rides r
		JOIN addresses sa ON sa.id = r.start_address_id
		JOIN addresses ea ON ea.id = r.end_address_id
		WHERE r.status = 'SCHEDULED'
		AND r.start_time > now()
		AND ($1 = '' OR sa.city LIKE '%' || $1 || '%')
		AND ($2 = '' OR ea.city LIKE '%' || $2 || '%')
	`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, startCity, destinationCity); err != nil {
		return 0, fmt.Errorf("failed to count rides: %w", err)
	}

	return count, nil
}

// hydrate loads the driver and both addresses onto the ride
func (r *RideRepo) hydrate(ctx context.Context, ride *models.Ride) error {
	driver, err := r.getDriver(ctx, ride.DriverID)
	if err != nil {
		return err
	}
	ride.Driver = driver

	return r.hydrateAddresses(ctx, ride)
}

func (r *RideRepo) hydrateAddresses(ctx context.Context, ride *models.Ride) error {
	start, err := r.getAddress(ctx, ride.StartAddressID)
	if err != nil {
		return err
	}
	end, err := r.getAddress(ctx, ride.EndAddressID)
	if err != nil {
		return err
	}

	ride.StartAddress = start
	ride.EndAddress = end
	return nil
}

// getDriver loads the public driver profile, password column excluded
func (r *RideRepo) getDriver(ctx context.Context, id uuid.UUID) (*models.User, error) {
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
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return &user, nil
}

func (r *RideRepo) getAddress(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	query := `
		SELECT id, user_id, latitude, longitude, city, formatted_address, deleted, created_at, updated_at
		FROM addresses
		WHERE id = $1
	`

	var address models.Address
	if err := r.db.GetContext(ctx, &address, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get address: %w", err)
	}

	return &address, nil
}

// prefixColumns qualifies each column in a comma-separated list with a
// table alias for joined queries.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = alias + "." + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}
