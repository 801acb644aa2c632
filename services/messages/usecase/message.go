package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/apperr"
	"github.com/caronalabs/carona/internal/pkg/logger"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
	"github.com/caronalabs/carona/services/messages"
)

type messageUC struct {
	cfg               *models.Config
	messageRepo       messages.MessageRepo
	messageGW         messages.MessageGW
	rideReader        messages.RideReader
	reservationReader messages.ReservationReader
}

// NewMessageUC creates a new message use case
func NewMessageUC(
	cfg *models.Config,
	messageRepo messages.MessageRepo,
	messageGW messages.MessageGW,
	rideReader messages.RideReader,
	reservationReader messages.ReservationReader,
) messages.MessageUC {
	return &messageUC{
		cfg:               cfg,
		messageRepo:       messageRepo,
		messageGW:         messageGW,
		rideReader:        rideReader,
		reservationReader: reservationReader,
	}
}

// Send stores an in-ride message. Both ends must be participants of the
// ride: its driver or a passenger holding an active reservation.
// Completed rides are closed for messaging.
func (uc *messageUC) Send(ctx context.Context, senderID uuid.UUID, req *models.SendMessageRequest) (*models.Message, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperr.New("Message content cannot be empty.")
	}
	if req.ReceiverID == senderID {
		return nil, apperr.New("You cannot message yourself.")
	}

	ride, err := uc.getRide(ctx, req.RideID)
	if err != nil {
		return nil, err
	}
	if ride.Status == models.RideStatusCompleted {
		return nil, apperr.New("Ride is completed and closed for messaging.")
	}

	if err := uc.validateParticipant(ctx, ride, senderID, "You are not a participant of this ride."); err != nil {
		return nil, err
	}
	if err := uc.validateParticipant(ctx, ride, req.ReceiverID, "Receiver is not a participant of this ride."); err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:         uuid.New(),
		RideID:     req.RideID,
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		CreatedAt:  time.Now(),
	}

	if err := uc.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	event := models.MessageEvent{Message: *message, Timestamp: time.Now()}
	if err := uc.messageGW.PublishMessageSent(ctx, event); err != nil {
		logger.Warn("Failed to publish message event",
			logger.String("message_id", message.ID.String()),
			logger.Err(err))
	}

	return message, nil
}

// ListByRide retrieves a ride's messages for one of its participants,
// oldest first.
func (uc *messageUC) ListByRide(ctx context.Context, rideID, requesterID uuid.UUID, p utils.Pagination) ([]*models.Message, int64, error) {
	ride, err := uc.getRide(ctx, rideID)
	if err != nil {
		return nil, 0, err
	}
	if err := uc.validateParticipant(ctx, ride, requesterID, "You are not a participant of this ride."); err != nil {
		return nil, 0, err
	}

	total, err := uc.messageRepo.CountByRide(ctx, rideID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	list, err := uc.messageRepo.ListByRide(ctx, rideID, p.PerPage, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}

	return list, total, nil
}

func (uc *messageUC) getRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideReader.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	if ride == nil {
		return nil, apperr.NotFound("Ride not found.")
	}
	return ride, nil
}

func (uc *messageUC) validateParticipant(ctx context.Context, ride *models.Ride, userID uuid.UUID, message string) error {
	if ride.DriverID == userID {
		return nil
	}

	active, err := uc.reservationReader.HasActiveReservation(ctx, ride.ID, userID)
	if err != nil {
		return fmt.Errorf("failed to check reservation: %w", err)
	}
	if !active {
		return apperr.Forbidden(message)
	}
	return nil
}
