package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// AddressRepo provides address data access on PostgreSQL
type AddressRepo struct {
	db *sqlx.DB
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *sqlx.DB) *AddressRepo {
	return &AddressRepo{db: db}
}

// CreateAddress inserts a new address
func (r *AddressRepo) CreateAddress(ctx context.Context, address *models.Address) error {
	query := `
		INSERT INTO addresses (id, user_id, latitude, longitude, city, formatted_address, deleted, created_at, updated_at)
		VALUES (:id, :user_id, :latitude, :longitude, :city, :formatted_address, :deleted, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, address); err != nil {
		return fmt.Errorf("failed to insert address: %w", err)
	}

	return nil
}

// GetAddressByID retrieves a non-deleted address by id, returning nil
// when absent.
func (r *AddressRepo) GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	query := `
		SELECT id, user_id, latitude, longitude, city, formatted_address, deleted, created_at, updated_at
		FROM addresses
		WHERE id = $1 AND deleted = false
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

// ListByUser retrieves a user's saved addresses
func (r *AddressRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {
	query := `
		SELECT id, user_id, latitude, longitude, city, formatted_address, deleted, created_at, updated_at
		FROM addresses
		WHERE user_id = $1 AND deleted = false
		ORDER BY created_at DESC
	`

	addresses := []*models.Address{}
	if err := r.db.SelectContext(ctx, &addresses, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	return addresses, nil
}

// CountSavedByUser counts a user's non-deleted saved addresses
func (r *AddressRepo) CountSavedByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM addresses WHERE user_id = $1 AND deleted = false`

	var count int
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count saved addresses: %w", err)
	}

	return count, nil
}

// SoftDelete marks an address as deleted. Rides referencing it keep
// their endpoint.
func (r *AddressRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE addresses SET deleted = true, updated_at = now() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	return nil
}
