package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/caronalabs/carona/internal/pkg/constants"
	"github.com/caronalabs/carona/internal/pkg/logger"
	"github.com/caronalabs/carona/internal/pkg/models"
	natspkg "github.com/caronalabs/carona/internal/pkg/nats"
	"github.com/caronalabs/carona/services/notify"
	"github.com/caronalabs/carona/services/notify/email"
)

// NotifyHandler subscribes to the domain event subjects and runs their
// side effects. Every handler is best-effort: failures are logged, the
// originating operation already committed.
type NotifyHandler struct {
	cfg               *models.Config
	natsClient        *natspkg.Client
	email             email.Sender
	userReader        notify.UserReader
	rideReader        notify.RideReader
	reservationReader notify.ReservationReader
	canceller         notify.ReservationCanceller
	recalculator      notify.RatingRecalculator
}

// NewNotifyHandler creates a new notify handler
func NewNotifyHandler(
	cfg *models.Config,
	natsClient *natspkg.Client,
	sender email.Sender,
	userReader notify.UserReader,
	rideReader notify.RideReader,
	reservationReader notify.ReservationReader,
	canceller notify.ReservationCanceller,
	recalculator notify.RatingRecalculator,
) *NotifyHandler {
	return &NotifyHandler{
		cfg:               cfg,
		natsClient:        natsClient,
		email:             sender,
		userReader:        userReader,
		rideReader:        rideReader,
		reservationReader: reservationReader,
		canceller:         canceller,
		recalculator:      recalculator,
	}
}

// InitConsumers subscribes to all domain event subjects
func (h *NotifyHandler) InitConsumers() error {
	subscriptions := map[string]nats.MsgHandler{
		constants.SubjectUserRegistered:       h.handleUserRegistered,
		constants.SubjectAccountDeactivated:   h.handleAccountDeactivated,
		constants.SubjectAccountReactivated:   h.handleAccountReactivated,
		constants.SubjectRideCancelled:        h.handleRideCancelled,
		constants.SubjectRideCompleted:        h.handleRideCompleted,
		constants.SubjectReservationCreated:   h.handleReservationCreated,
		constants.SubjectReservationConfirmed: h.handleReservationConfirmed,
		constants.SubjectReservationCancelled: h.handleReservationCancelled,
		constants.SubjectReviewCreated:        h.handleReviewChanged,
		constants.SubjectReviewUpdated:        h.handleReviewChanged,
		constants.SubjectReviewDeleted:        h.handleReviewChanged,
		constants.SubjectMessageSent:          h.handleMessageSent,
	}

	for subject, msgHandler := range subscriptions {
		if _, err := h.natsClient.Subscribe(subject, msgHandler); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
	}

	logger.Info("Notify consumers initialized", logger.Int("subjects", len(subscriptions)))
	return nil
}

func (h *NotifyHandler) handleUserRegistered(msg *nats.Msg) {
	var event models.AccountEvent
	if !h.unmarshal(msg, &event) {
		return
	}

	body := fmt.Sprintf("Hello %s,\n\nWelcome to %s! Your account is ready.\n", event.Name, h.cfg.App.Name)
	h.sendEmail(event.Email, "Welcome aboard", body)
}

func (h *NotifyHandler) handleAccountDeactivated(msg *nats.Msg) {
	var event models.AccountEvent
	if !h.unmarshal(msg, &event) {
		return
	}

	body := fmt.Sprintf("Hello %s,\n\nYour account has been deactivated. Logging in again will reactivate it.\n", event.Name)
	h.sendEmail(event.Email, "Account deactivated", body)
}

func (h *NotifyHandler) handleAccountReactivated(msg *nats.Msg) {
	var event models.AccountEvent
	if !h.unmarshal(msg, &event) {
		return
	}

	body := fmt.Sprintf("Hello %s,\n\nWelcome back! Your account is active again.\n", event.Name)
	h.sendEmail(event.Email, "Welcome back", body)
}

// handleRideCancelled cascades the cancellation to the ride's
// reservations. Passenger notifications ride on the resulting
// reservation.cancelled events.
func (h *NotifyHandler) handleRideCancelled(msg *nats.Msg) {
	var event models.RideEvent
	if !h.unmarshal(msg, &event) {
		return
	}

	ctx := context.Background()
	if err := h.canceller.CancelAllForRide(ctx, event.Ride.ID); err != nil {
		logger.Error("Failed to cascade ride cancellation",
			logger.String("ride_id", event.Ride.ID.String()),
			logger.Err(err))
	}
}

// handleRideCompleted invites confirmed passengers to review the driver
func (h *NotifyHandler) handleRideCompleted(msg *nats.Msg) {
	var event models.RideEvent
	if !h.unmarshal(msg, &event) {
		return
	}

	ctx := context.Background()
	confirmed, err := h.reservationReader.ListByRide(ctx, event.Ride.ID, true)
	if err != nil {
		logger.Error("Failed to list confirmed reservations",
			logger.String("ride_id", event.Ride.ID.String()),
			logger.Err(err))
		return
	}

	for _, reservation := range confirmed {
		if reservation.Passenger == nil {
			continue
		}
		body := fmt.Sprintf("Hello %s,\n\nYour ride has been completed. How was it? Leave a review for your driver.\n", reservation.Passenger.Name)
		h.sendEmail(reservation.Passenger.Email, "Your ride is complete", body)
	}
}

// handleReservationCreated notifies the ride's driver of the new claim
func (h *NotifyHandler) handleReservationCreated(msg *nats.Msg) {
	var event models.ReservationEvent
	if !h.unmarshal(msg, &event) {
		return
	}

	driver, ok := h.driverForRide(event.Reservation.RideID)
	if !ok {
		return
	}

	body := fmt.Sprintf("Hello %s,\n\nA passenger reserved a seat on your ride. The reservation is pending confirmation.\n", driver.Name)
	h.sendEmail(driver.Email, "New reservation on your ride", body)
}

// handleReservationConfirmed notifies the ride's driver
func (h *NotifyHandler) handleReservationConfirmed(msg *nats.Msg) {
	var event models.ReservationEvent
	if !h.unmarshal(msg, &event) {
		return
	}

	driver, ok := h.driverForRide(event.Reservation.RideID)
	if !ok {
		return
	}

	body := fmt.Sprintf("Hello %s,\n\nA reservation on your ride has been confirmed and paid.\n", driver.Name)
	h.sendEmail(driver.Email, "Reservation confirmed", body)
}

// handleReservationCancelled notifies the passenger who lost the seat
func (h *NotifyHandler) handleReservationCancelled(msg *nats.Msg) {
	var event models.ReservationEvent
	if !h.unmarshal(msg, &event) {
		return
	}

	ctx := context.Background()
	passenger, err := h.userReader.GetUserByID(ctx, event.Reservation.PassengerID)
	if err != nil || passenger == nil {
		logger.Error("Failed to load passenger for cancelled reservation",
			logger.String("reservation_id", event.Reservation.ID.String()),
			logger.Err(err))
		return
	}

	body := fmt.Sprintf("Hello %s,\n\nYour reservation has been cancelled.\n", passenger.Name)
	h.sendEmail(passenger.Email, "Reservation cancelled", body)
}

// handleReviewChanged refreshes the reviewee's average rating
func (h *NotifyHandler) handleReviewChanged(msg *nats.Msg) {
	var event models.ReviewEvent
	if !h.unmarshal(msg, &event) {
		return
	}

	ctx := context.Background()
	if err := h.recalculator.RecalculateAverageRating(ctx, event.RevieweeID); err != nil {
		logger.Error("Failed to recalculate average rating",
			logger.String("user_id", event.RevieweeID.String()),
			logger.Err(err))
	}
}

// handleMessageSent notifies the message's receiver
func (h *NotifyHandler) handleMessageSent(msg *nats.Msg) {
	var event models.MessageEvent
	if !h.unmarshal(msg, &event) {
		return
	}

	ctx := context.Background()
	receiver, err := h.userReader.GetUserByID(ctx, event.Message.ReceiverID)
	if err != nil || receiver == nil {
		logger.Error("Failed to load message receiver",
			logger.String("message_id", event.Message.ID.String()),
			logger.Err(err))
		return
	}

	body := fmt.Sprintf("Hello %s,\n\nYou have a new message about your ride.\n", receiver.Name)
	h.sendEmail(receiver.Email, "New ride message", body)
}

func (h *NotifyHandler) driverForRide(rideID uuid.UUID) (*models.User, bool) {
	ctx := context.Background()
	ride, err := h.rideReader.GetRideByID(ctx, rideID)
	if err != nil || ride == nil {
		logger.Error("Failed to load ride for notification",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
		return nil, false
	}

	driver, err := h.userReader.GetUserByID(ctx, ride.DriverID)
	if err != nil || driver == nil {
		logger.Error("Failed to load driver for notification",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
		return nil, false
	}

	return driver, true
}

func (h *NotifyHandler) unmarshal(msg *nats.Msg, out interface{}) bool {
	if err := json.Unmarshal(msg.Data, out); err != nil {
		logger.Error("Failed to unmarshal event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return false
	}
	return true
}

func (h *NotifyHandler) sendEmail(to, subject, body string) {
	if err := h.email.Send(to, subject, body); err != nil {
		logger.Error("Failed to send notification email",
			logger.String("to", to),
			logger.String("subject", subject),
			logger.Err(err))
	}
}
