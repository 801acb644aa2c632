package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// VehicleRepo provides vehicle data access on PostgreSQL
type VehicleRepo struct {
	db *sqlx.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *sqlx.DB) *VehicleRepo {
	return &VehicleRepo{db: db}
}

// RegisterVehicle inserts the vehicle and flips the owner's driver flag
// in one transaction.
func (r *VehicleRepo) RegisterVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO vehicles (vehicle_id, owner_id, brand, model, color, plate, seats, active, created_at, updated_at)
		VALUES (:vehicle_id, :owner_id, :brand, :model, :color, :plate, :seats, :active, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, insert, vehicle); err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	promote := `UPDATE users SET is_driver = true, updated_at = now() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, promote, vehicle.OwnerID); err != nil {
		return fmt.Errorf("failed to promote owner to driver: %w", err)
	}

	return tx.Commit()
}

// GetVehicleByID retrieves a vehicle by id, returning nil when absent
func (r *VehicleRepo) GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT vehicle_id, owner_id, brand, model, color, plate, seats, active, created_at, updated_at
		FROM vehicles
		WHERE vehicle_id = $1
	`

	var vehicle models.Vehicle
	if err := r.db.GetContext(ctx, &vehicle, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

// GetVehicleByPlate retrieves a vehicle by plate, returning nil when absent
func (r *VehicleRepo) GetVehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	query := `
		SELECT vehicle_id, owner_id, brand, model, color, plate, seats, active, created_at, updated_at
		FROM vehicles
		WHERE plate = $1
	`

	var vehicle models.Vehicle
	if err := r.db.GetContext(ctx, &vehicle, query, plate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vehicle by plate: %w", err)
	}

	return &vehicle, nil
}

// UpdateVehicleFields applies a partial column update; nil fields are
// left untouched.
func (r *VehicleRepo) UpdateVehicleFields(ctx context.Context, id uuid.UUID, color *string, seats *int) error {
	sets := []string{"updated_at = now()"}
	args := []interface{}{id}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if color != nil {
		add("color", *color)
	}
	if seats != nil {
		add("seats", *seats)
	}

	query := fmt.Sprintf(`UPDATE vehicles SET %s WHERE vehicle_id = $1`, strings.Join(sets, ", "))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	return nil
}

// ListByOwner retrieves all vehicles registered by the owner
func (r *VehicleRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error) {
	query := `
		SELECT vehicle_id, owner_id, brand, model, color, plate, seats, active, created_at, updated_at
		FROM vehicles
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	vehicles := []*models.Vehicle{}
	if err := r.db.SelectContext(ctx, &vehicles, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return vehicles, nil
}

// CountActiveByOwner counts the owner's active vehicles
func (r *VehicleRepo) CountActiveByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM vehicles WHERE owner_id = $1 AND active = true`

	var count int
	if err := r.db.GetContext(ctx, &count, query, ownerID); err != nil {
		return 0, fmt.Errorf("failed to count active vehicles: %w", err)
	}

	return count, nil
}

// SetActive flips the vehicle's active flag
func (r *VehicleRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE vehicles SET active = $2, updated_at = now() WHERE vehicle_id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, active); err != nil {
		return fmt.Errorf("failed to set vehicle active flag: %w", err)
	}

	return nil
}

// SetOwnerIsDriver flips the owner's driver flag
func (r *VehicleRepo) SetOwnerIsDriver(ctx context.Context, ownerID uuid.UUID, isDriver bool) error {
	query := `UPDATE users SET is_driver = $2, updated_at = now() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, ownerID, isDriver); err != nil {
		return fmt.Errorf("failed to set driver flag: %w", err)
	}

	return nil
}

// HasActiveRides reports whether any scheduled or in-progress ride uses
// the vehicle.
func (r *VehicleRepo) HasActiveRides(ctx context.Context, vehicleID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM rides
			WHERE vehicle_id = $1 AND status IN ('SCHEDULED', 'IN_PROGRESS')
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, vehicleID); err != nil {
		return false, fmt.Errorf("failed to check vehicle rides: %w", err)
	}

	return exists, nil
}
