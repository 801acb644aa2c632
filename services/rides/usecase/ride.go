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
	"github.com/caronalabs/carona/services/location"
	"github.com/caronalabs/carona/services/rides"
)

type rideUC struct {
	cfg             *models.Config
	rideRepo        rides.RideRepo
	rideGW          rides.RideGW
	userReader      rides.UserReader
	vehicleReader   rides.VehicleReader
	addressResolver rides.AddressResolver
	distanceMatrix  location.DistanceMatrix
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	rideGW rides.RideGW,
	userReader rides.UserReader,
	vehicleReader rides.VehicleReader,
	addressResolver rides.AddressResolver,
	distanceMatrix location.DistanceMatrix,
) rides.RideUC {
	return &rideUC{
		cfg:             cfg,
		rideRepo:        rideRepo,
		rideGW:          rideGW,
		userReader:      userReader,
		vehicleReader:   vehicleReader,
		addressResolver: addressResolver,
		distanceMatrix:  distanceMatrix,
	}
}

// CreateRide schedules a new ride after running the full guard chain:
// driver and vehicle checks, seat and price bounds, start time, the
// driver's scheduling window, endpoint resolution and route distance.
func (uc *rideUC) CreateRide(ctx context.Context, driverID uuid.UUID, req *models.CreateRideRequest) (*models.Ride, error) {
	if _, err := uc.validateDriver(ctx, driverID); err != nil {
		return nil, err
	}

	vehicle, err := uc.validateVehicle(ctx, req.VehicleID, driverID)
	if err != nil {
		return nil, err
	}
	if err := validateSeats(req.AvailableSeats, vehicle); err != nil {
		return nil, err
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}
	if err := validateStartTime(req.StartTime); err != nil {
		return nil, err
	}
	if err := uc.validateNoConflict(ctx, driverID, req.StartTime, nil); err != nil {
		return nil, err
	}

	startAddress, err := uc.addressResolver.GetOrCreate(ctx, req.StartLocationID, req.StartLatitude, req.StartLongitude)
	if err != nil {
		return nil, err
	}
	endAddress, err := uc.addressResolver.GetOrCreate(ctx, req.EndLocationID, req.EndLatitude, req.EndLongitude)
	if err != nil {
		return nil, err
	}
	if err := uc.validateDistance(ctx, startAddress, endAddress); err != nil {
		return nil, err
	}

	now := time.Now()
	ride := &models.Ride{
		ID:             uuid.New(),
		DriverID:       driverID,
		VehicleID:      vehicle.ID,
		StartAddressID: startAddress.ID,
		EndAddressID:   endAddress.ID,
		StartTime:      req.StartTime,
		Price:          req.Price,
		AvailableSeats: req.AvailableSeats,
		Preferences:    req.Preferences,
		Status:         models.RideStatusScheduled,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	created, err := uc.rideRepo.GetRideWithDetails(ctx, ride.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created ride: %w", err)
	}

	uc.publish(ctx, uc.rideGW.PublishRideCreated, created, "created")
	return created, nil
}

// UpdateRide applies a partial update to a scheduled ride. Untouched
// fields keep their prior values; changed fields re-run their guards.
func (uc *rideUC) UpdateRide(ctx context.Context, rideID, driverID uuid.UUID, req *models.UpdateRideRequest) (*models.Ride, error) {
	ride, err := uc.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := validateRideOwnership(ride, driverID); err != nil {
		return nil, err
	}
	if err := validateRideStatus(ride, models.RideStatusScheduled); err != nil {
		return nil, err
	}

	fields := &models.RideUpdateFields{
		StartTime:   req.StartTime,
		Preferences: req.Preferences,
	}

	if req.VehicleID != nil && *req.VehicleID != ride.VehicleID {
		vehicle, err := uc.validateVehicle(ctx, *req.VehicleID, driverID)
		if err != nil {
			return nil, err
		}
		seats := ride.AvailableSeats
		if req.AvailableSeats != nil {
			seats = *req.AvailableSeats
		}
		if err := validateSeats(seats, vehicle); err != nil {
			return nil, err
		}
		fields.VehicleID = &vehicle.ID
	}

	if req.AvailableSeats != nil {
		vehicleID := ride.VehicleID
		if fields.VehicleID != nil {
			vehicleID = *fields.VehicleID
		}
		vehicle, err := uc.vehicleReader.GetVehicleByID(ctx, vehicleID)
		if err != nil {
			return nil, fmt.Errorf("failed to get vehicle: %w", err)
		}
		if vehicle == nil {
			return nil, apperr.NotFound("Vehicle not found.")
		}
		if err := validateSeats(*req.AvailableSeats, vehicle); err != nil {
			return nil, err
		}
		fields.AvailableSeats = req.AvailableSeats
	}

	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		fields.Price = req.Price
	}

	if req.StartTime != nil {
		if err := validateStartTime(*req.StartTime); err != nil {
			return nil, err
		}
		if err := uc.validateNoConflict(ctx, driverID, *req.StartTime, &ride.ID); err != nil {
			return nil, err
		}
	}

	startAddress, endAddress, err := uc.resolveUpdatedEndpoints(ctx, ride, req)
	if err != nil {
		return nil, err
	}
	if startAddress != nil {
		fields.StartAddressID = &startAddress.ID
	}
	if endAddress != nil {
		fields.EndAddressID = &endAddress.ID
	}

	if err := uc.rideRepo.UpdateRideFields(ctx, ride.ID, fields); err != nil {
		return nil, fmt.Errorf("failed to update ride: %w", err)
	}

	updated, err := uc.rideRepo.GetRideWithDetails(ctx, ride.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated ride: %w", err)
	}

	uc.publish(ctx, uc.rideGW.PublishRideUpdated, updated, "updated")
	return updated, nil
}

// resolveUpdatedEndpoints re-resolves ride endpoints when the request
// touches them and re-validates the route distance against the
// endpoints that will be in effect.
func (uc *rideUC) resolveUpdatedEndpoints(ctx context.Context, ride *models.Ride, req *models.UpdateRideRequest) (*models.Address, *models.Address, error) {
	startChanged := req.StartLocationID != nil || req.StartLatitude != nil || req.StartLongitude != nil
	endChanged := req.EndLocationID != nil || req.EndLatitude != nil || req.EndLongitude != nil
	if !startChanged && !endChanged {
		return nil, nil, nil
	}

	var newStart, newEnd *models.Address
	var err error

	if startChanged {
		newStart, err = uc.addressResolver.GetOrCreate(ctx, req.StartLocationID, req.StartLatitude, req.StartLongitude)
	} else {
		newStart, err = uc.addressResolver.GetOrCreate(ctx, &ride.StartAddressID, nil, nil)
	}
	if err != nil {
		return nil, nil, err
	}

	if endChanged {
		newEnd, err = uc.addressResolver.GetOrCreate(ctx, req.EndLocationID, req.EndLatitude, req.EndLongitude)
	} else {
		newEnd, err = uc.addressResolver.GetOrCreate(ctx, &ride.EndAddressID, nil, nil)
	}
	if err != nil {
		return nil, nil, err
	}

	if err := uc.validateDistance(ctx, newStart, newEnd); err != nil {
		return nil, nil, err
	}

	if !startChanged {
		newStart = nil
	}
	if !endChanged {
		newEnd = nil
	}
	return newStart, newEnd, nil
}

// CancelRide cancels a scheduled ride. Reservations on it are cancelled
// asynchronously by the ride.cancelled consumer, without restoring
// seats on the dead ride.
func (uc *rideUC) CancelRide(ctx context.Context, rideID, driverID uuid.UUID) error {
	ride, err := uc.getRide(ctx, rideID)
	if err != nil {
		return err
	}
	if err := validateRideOwnership(ride, driverID); err != nil {
		return err
	}
	if err := validateRideStatus(ride, models.RideStatusScheduled); err != nil {
		return err
	}

	if err := uc.rideRepo.UpdateStatus(ctx, rideID, models.RideStatusScheduled, models.RideStatusCancelled); err != nil {
		if errors.Is(err, rides.ErrStatusConflict) {
			return apperr.New("Ride is no longer scheduled and cannot be cancelled.")
		}
		return fmt.Errorf("failed to cancel ride: %w", err)
	}

	cancelled, err := uc.rideRepo.GetRideWithDetails(ctx, rideID)
	if err != nil {
		return fmt.Errorf("failed to load cancelled ride: %w", err)
	}

	uc.publish(ctx, uc.rideGW.PublishRideCancelled, cancelled, "cancelled")
	return nil
}

// StartRide begins a scheduled ride. Requires the start time to have
// arrived and at least one confirmed reservation.
func (uc *rideUC) StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := validateRideOwnership(ride, driverID); err != nil {
		return nil, err
	}
	if err := validateRideStatus(ride, models.RideStatusScheduled); err != nil {
		return nil, err
	}
	if time.Now().Before(ride.StartTime) {
		return nil, apperr.New("Ride cannot start before its scheduled start time.")
	}

	confirmed, err := uc.rideRepo.CountConfirmedReservations(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to count confirmed reservations: %w", err)
	}
	if confirmed == 0 {
		return nil, apperr.New("Ride cannot start without a confirmed reservation.")
	}

	if err := uc.rideRepo.UpdateStatus(ctx, rideID, models.RideStatusScheduled, models.RideStatusInProgress); err != nil {
		if errors.Is(err, rides.ErrStatusConflict) {
			return nil, apperr.New("Ride is no longer scheduled and cannot start.")
		}
		return nil, fmt.Errorf("failed to start ride: %w", err)
	}

	started, err := uc.rideRepo.GetRideWithDetails(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to load started ride: %w", err)
	}

	uc.publish(ctx, uc.rideGW.PublishRideStarted, started, "started")
	return started, nil
}

// CompleteRide finishes an in-progress ride and stamps its end time
func (uc *rideUC) CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := validateRideOwnership(ride, driverID); err != nil {
		return nil, err
	}
	if err := validateRideStatus(ride, models.RideStatusInProgress); err != nil {
		return nil, err
	}

	if err := uc.rideRepo.CompleteRide(ctx, rideID, time.Now()); err != nil {
		if errors.Is(err, rides.ErrStatusConflict) {
			return nil, apperr.New("Ride is not in progress and cannot be completed.")
		}
		return nil, fmt.Errorf("failed to complete ride: %w", err)
	}

	completed, err := uc.rideRepo.GetRideWithDetails(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed ride: %w", err)
	}

	uc.publish(ctx, uc.rideGW.PublishRideCompleted, completed, "completed")
	return completed, nil
}

// GetRide retrieves a ride with driver and address details
func (uc *rideUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRideWithDetails(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	if ride == nil {
		return nil, apperr.NotFound("Ride not found.")
	}
	return ride, nil
}

// ListByDriver retrieves a driver's rides, newest first
func (uc *rideUC) ListByDriver(ctx context.Context, driverID uuid.UUID, p utils.Pagination) ([]*models.Ride, int64, error) {
	total, err := uc.rideRepo.CountByDriver(ctx, driverID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count rides: %w", err)
	}

	list, err := uc.rideRepo.ListByDriver(ctx, driverID, p.PerPage, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rides: %w", err)
	}

	return list, total, nil
}

// Search lists scheduled rides filtered by start and/or destination
// city substring, soonest first.
func (uc *rideUC) Search(ctx context.Context, startCity, destinationCity string, p utils.Pagination) ([]*models.Ride, int64, error) {
	total, err := uc.rideRepo.CountScheduled(ctx, startCity, destinationCity)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count rides: %w", err)
	}

	list, err := uc.rideRepo.SearchScheduled(ctx, startCity, destinationCity, p.PerPage, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search rides: %w", err)
	}

	return list, total, nil
}

// publish failures never fail the ride operation itself
func (uc *rideUC) publish(ctx context.Context, publish func(context.Context, models.RideEvent) error, ride *models.Ride, action string) {
	event := models.RideEvent{
		Ride:      *ride,
		Timestamp: time.Now(),
	}
	if err := publish(ctx, event); err != nil {
		logger.Warn("Failed to publish ride event",
			logger.String("action", action),
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}
}
