package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/apperr"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/services/vehicles"
)

type vehicleUC struct {
	cfg         *models.Config
	vehicleRepo vehicles.VehicleRepo
}

// NewVehicleUC creates a new vehicle use case
func NewVehicleUC(cfg *models.Config, vehicleRepo vehicles.VehicleRepo) vehicles.VehicleUC {
	return &vehicleUC{
		cfg:         cfg,
		vehicleRepo: vehicleRepo,
	}
}

// Register registers a vehicle for the owner and promotes them to driver
func (uc *vehicleUC) Register(ctx context.Context, ownerID uuid.UUID, req *models.RegisterVehicleRequest) (*models.Vehicle, error) {
	if strings.TrimSpace(req.Brand) == "" || strings.TrimSpace(req.Model) == "" {
		return nil, apperr.New("Vehicle brand and model are required.")
	}
	if req.Seats < 1 {
		return nil, apperr.New("Vehicle must have at least one passenger seat.")
	}

	plate := normalizePlate(req.Plate)
	if plate == "" {
		return nil, apperr.New("Vehicle plate is required.")
	}

	existing, err := uc.vehicleRepo.GetVehicleByPlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing plate: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("A vehicle with this plate is already registered.")
	}

	now := time.Now()
	vehicle := &models.Vehicle{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Brand:     strings.TrimSpace(req.Brand),
		Model:     strings.TrimSpace(req.Model),
		Color:     strings.TrimSpace(req.Color),
		Plate:     plate,
		Seats:     req.Seats,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.vehicleRepo.RegisterVehicle(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to register vehicle: %w", err)
	}

	return vehicle, nil
}

// Update applies a partial update of the vehicle's color or seats
func (uc *vehicleUC) Update(ctx context.Context, vehicleID, requesterID uuid.UUID, req *models.UpdateVehicleRequest) (*models.Vehicle, error) {
	if req.Color == nil && req.Seats == nil {
		return nil, apperr.New("At least one of color or seats must be provided.")
	}
	if req.Seats != nil && *req.Seats < 1 {
		return nil, apperr.New("Vehicle must have at least one passenger seat.")
	}

	vehicle, err := uc.getOwnedVehicle(ctx, vehicleID, requesterID)
	if err != nil {
		return nil, err
	}

	var color *string
	if req.Color != nil {
		trimmed := strings.TrimSpace(*req.Color)
		color = &trimmed
	}

	if err := uc.vehicleRepo.UpdateVehicleFields(ctx, vehicleID, color, req.Seats); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	if color != nil {
		vehicle.Color = *color
	}
	if req.Seats != nil {
		vehicle.Seats = *req.Seats
	}
	return vehicle, nil
}

// Deactivate retires a vehicle. Blocked while the vehicle has scheduled
// or in-progress rides; retiring the owner's last active vehicle
// revokes their driver flag.
func (uc *vehicleUC) Deactivate(ctx context.Context, vehicleID, requesterID uuid.UUID) error {
	vehicle, err := uc.getOwnedVehicle(ctx, vehicleID, requesterID)
	if err != nil {
		return err
	}
	if !vehicle.Active {
		return apperr.New("Vehicle is already deactivated.")
	}

	hasRides, err := uc.vehicleRepo.HasActiveRides(ctx, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to check vehicle rides: %w", err)
	}
	if hasRides {
		return apperr.New("Vehicle has scheduled or in-progress rides and cannot be deactivated.")
	}

	if err := uc.vehicleRepo.SetActive(ctx, vehicleID, false); err != nil {
		return fmt.Errorf("failed to deactivate vehicle: %w", err)
	}

	remaining, err := uc.vehicleRepo.CountActiveByOwner(ctx, vehicle.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to count active vehicles: %w", err)
	}
	if remaining == 0 {
		if err := uc.vehicleRepo.SetOwnerIsDriver(ctx, vehicle.OwnerID, false); err != nil {
			return fmt.Errorf("failed to revoke driver flag: %w", err)
		}
	}

	return nil
}

// Reactivate restores a retired vehicle and the owner's driver flag
func (uc *vehicleUC) Reactivate(ctx context.Context, vehicleID, requesterID uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := uc.getOwnedVehicle(ctx, vehicleID, requesterID)
	if err != nil {
		return nil, err
	}
	if vehicle.Active {
		return nil, apperr.New("Vehicle is already active.")
	}

	if err := uc.vehicleRepo.SetActive(ctx, vehicleID, true); err != nil {
		return nil, fmt.Errorf("failed to reactivate vehicle: %w", err)
	}
	if err := uc.vehicleRepo.SetOwnerIsDriver(ctx, vehicle.OwnerID, true); err != nil {
		return nil, fmt.Errorf("failed to restore driver flag: %w", err)
	}

	vehicle.Active = true
	return vehicle, nil
}

// ListByOwner retrieves all vehicles registered by the owner
func (uc *vehicleUC) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error) {
	list, err := uc.vehicleRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return list, nil
}

func (uc *vehicleUC) getOwnedVehicle(ctx context.Context, vehicleID, requesterID uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := uc.vehicleRepo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, apperr.NotFound("Vehicle not found.")
	}
	if vehicle.OwnerID != requesterID {
		return nil, apperr.Forbidden("You do not own this vehicle.")
	}
	return vehicle, nil
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), " ", ""))
}
