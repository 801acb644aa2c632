package constants

// NATS subjects for domain events. Published by the lifecycle usecases
// after their state mutation commits; consumed by the notify service.
const (
	// Ride lifecycle
	SubjectRideCreated   = "ride.created"
	SubjectRideUpdated   = "ride.updated"
	SubjectRideCancelled = "ride.cancelled"
	SubjectRideStarted   = "ride.started"
	SubjectRideCompleted = "ride.completed"

	// Reservation lifecycle
	SubjectReservationCreated   = "reservation.created"
	SubjectReservationConfirmed = "reservation.confirmed"
	SubjectReservationCancelled = "reservation.cancelled"

	// Reviews
	SubjectReviewCreated = "review.created"
	SubjectReviewUpdated = "review.updated"
	SubjectReviewDeleted = "review.deleted"

	// Accounts
	SubjectUserRegistered     = "account.registered"
	SubjectAccountDeactivated = "account.deactivated"
	SubjectAccountReactivated = "account.reactivated"

	// Messages
	SubjectMessageSent = "message.sent"
)
