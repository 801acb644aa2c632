package rides

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// ErrStatusConflict is returned by conditional status transitions when
// the ride's status changed under us. The caller re-reads and reports
// the precondition failure.
var ErrStatusConflict = errors.New("ride status changed concurrently")

// RideRepo defines the interface for ride data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/caronalabs/carona/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRideByID(ctx context.Context, id uuid.UUID) (*models.Ride, error)
	// GetRideWithDetails hydrates the driver and both addresses.
	GetRideWithDetails(ctx context.Context, id uuid.UUID) (*models.Ride, error)
	// HasConflictingRide reports whether the driver already has a
	// non-terminal ride starting inside [windowStart, windowEnd].
	HasConflictingRide(ctx context.Context, driverID uuid.UUID, windowStart, windowEnd time.Time, excludeRideID *uuid.UUID) (bool, error)
	UpdateRideFields(ctx context.Context, id uuid.UUID, fields *models.RideUpdateFields) error
	// UpdateStatus transitions the ride from one status to another,
	// returning ErrStatusConflict when the current status no longer
	// matches.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.RideStatus) error
	// CompleteRide transitions IN_PROGRESS to COMPLETED and stamps the
	// end time, returning ErrStatusConflict when the ride is not in
	// progress.
	CompleteRide(ctx context.Context, id uuid.UUID, endTime time.Time) error
	CountConfirmedReservations(ctx context.Context, rideID uuid.UUID) (int, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID, limit, offset int) ([]*models.Ride, error)
	CountByDriver(ctx context.Context, driverID uuid.UUID) (int64, error)
	SearchScheduled(ctx context.Context, startCity, destinationCity string, limit, offset int) ([]*models.Ride, error)
	CountScheduled(ctx context.Context, startCity, destinationCity string) (int64, error)
}
