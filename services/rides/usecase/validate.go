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
	"github.com/caronalabs/carona/services/location"
)

// Guard helpers shared by the ride lifecycle operations. Each returns a
// ValidationError when its precondition fails, so handlers map them to
// proper status codes without inspecting messages.

func (uc *rideUC) validateDriver(ctx context.Context, driverID uuid.UUID) (*models.User, error) {
	user, err := uc.userReader.GetUserByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	if user == nil || !user.Active {
		return nil, apperr.NotFound("Driver account not found.")
	}
	if !user.IsDriver {
		return nil, apperr.Forbidden("Only drivers can offer rides.")
	}
	return user, nil
}

func (uc *rideUC) validateVehicle(ctx context.Context, vehicleID, driverID uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := uc.vehicleReader.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, apperr.NotFound("Vehicle not found.")
	}
	if vehicle.OwnerID != driverID {
		return nil, apperr.Forbidden("You do not own this vehicle.")
	}
	if !vehicle.Active {
		return nil, apperr.New("Vehicle is deactivated.")
	}
	return vehicle, nil
}

func validateSeats(seats int, vehicle *models.Vehicle) error {
	if seats < 1 {
		return apperr.New("Ride must offer at least one seat.")
	}
	if seats > vehicle.Seats {
		return apperr.New("Ride cannot offer more seats than the vehicle has.")
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return apperr.New("Price cannot be negative.")
	}
	return nil
}

func validateStartTime(startTime time.Time) error {
	if !startTime.After(time.Now()) {
		return apperr.New("Ride start time must be in the future.")
	}
	return nil
}

// validateNoConflict enforces the driver's scheduling window: no other
// non-terminal ride may start within the configured window around the
// new start time.
func (uc *rideUC) validateNoConflict(ctx context.Context, driverID uuid.UUID, startTime time.Time, excludeRideID *uuid.UUID) error {
	window := time.Duration(uc.cfg.Rides.ConflictWindowHours) * time.Hour
	conflict, err := uc.rideRepo.HasConflictingRide(ctx, driverID, startTime.Add(-window), startTime.Add(window), excludeRideID)
	if err != nil {
		return fmt.Errorf("failed to check ride conflicts: %w", err)
	}
	if conflict {
		return apperr.Conflict(fmt.Sprintf("You already have a ride scheduled within %d hours of this start time.", uc.cfg.Rides.ConflictWindowHours))
	}
	return nil
}

// validateDistance checks that the route between the endpoints is long
// enough to be worth a ride. An unroutable pair is rejected the same
// way.
func (uc *rideUC) validateDistance(ctx context.Context, start, end *models.Address) error {
	if start.ID == end.ID {
		return apperr.New("Start and destination cannot be the same address.")
	}

	origin := fmt.Sprintf("%f,%f", start.Latitude, start.Longitude)
	destination := fmt.Sprintf("%f,%f", end.Latitude, end.Longitude)

	result, err := uc.distanceMatrix.Distance(ctx, origin, destination)
	if err != nil {
		if errors.Is(err, location.ErrNoRoute) {
			return apperr.New("No route exists between start and destination.")
		}
		// An unreachable distance service blocks the ride the same way an
		// unroutable pair does.
		logger.Warn("Route distance check failed",
			logger.String("origin", origin),
			logger.String("destination", destination),
			logger.Err(err))
		return apperr.New("Could not determine the route between start and destination.")
	}

	if result.Distance < uc.cfg.Rides.MinDistanceMeters {
		return apperr.New("Start and destination are too close for a ride.")
	}

	return nil
}

func (uc *rideUC) getRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	if ride == nil {
		return nil, apperr.NotFound("Ride not found.")
	}
	return ride, nil
}

func validateRideOwnership(ride *models.Ride, driverID uuid.UUID) error {
	if ride.DriverID != driverID {
		return apperr.Forbidden("You are not the driver of this ride.")
	}
	return nil
}

func validateRideStatus(ride *models.Ride, expected models.RideStatus) error {
	if ride.Status != expected {
		return apperr.New(fmt.Sprintf("Only %s rides can be processed this way.", expected))
	}
	return nil
}
