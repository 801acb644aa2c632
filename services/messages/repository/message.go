package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// MessageRepo provides message data access on PostgreSQL
type MessageRepo struct {
	db *sqlx.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *sqlx.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// CreateMessage inserts a new message
func (r *MessageRepo) CreateMessage(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (message_id, ride_id, sender_id, receiver_id, content, created_at)
		VALUES (:message_id, :ride_id, :sender_id, :receiver_id, :content, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, message); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return nil
}

// ListByRide retrieves a ride's messages, oldest first
func (r *MessageRepo) ListByRide(ctx context.Context, rideID uuid.UUID, limit, offset int) ([]*models.Message, error) {
	query := `
		SELECT message_id, ride_id, sender_id, receiver_id, content, created_at
		FROM messages
		WHERE ride_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`

	list := []*models.Message{}
	if err := r.db.SelectContext(ctx, &list, query, rideID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return list, nil
}

// CountByRide counts a ride's messages
func (r *MessageRepo) CountByRide(ctx context.Context, rideID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM messages WHERE ride_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, rideID); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return count, nil
}
