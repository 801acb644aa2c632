package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is an in-ride message exchanged between the driver and a
// passenger holding an active reservation.
type Message struct {
	ID         uuid.UUID `json:"message_id" db:"message_id"`
	RideID     uuid.UUID `json:"ride_id" db:"ride_id"`
	SenderID   uuid.UUID `json:"sender_id" db:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// SendMessageRequest is the payload for sending an in-ride message
type SendMessageRequest struct {
	RideID     uuid.UUID `json:"ride_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Content    string    `json:"content"`
}
