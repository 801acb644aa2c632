package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caronalabs/carona/internal/pkg/middleware"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
	"github.com/caronalabs/carona/services/reservations"
)

// ReservationHandler handles HTTP requests for reservation operations
type ReservationHandler struct {
	reservationUC reservations.ReservationUC
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationUC reservations.ReservationUC) *ReservationHandler {
	return &ReservationHandler{reservationUC: reservationUC}
}

// RegisterRoutes wires reservation endpoints, all authenticated
func (h *ReservationHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	g := e.Group("", middleware.JWTAuthMiddleware(jwtConfig))
	g.POST("/rides/:id/reservations", h.Create)
	g.GET("/rides/:id/reservations", h.ListByRide)
	g.GET("/reservations", h.ListOwn)
	g.POST("/reservations/:id/confirm", h.Confirm)
	g.DELETE("/reservations/:id", h.Cancel)
}

// Create handles seat reservation requests
func (h *ReservationHandler) Create(c echo.Context) error {
	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	reservation, err := h.reservationUC.Create(c.Request().Context(), rideID, passengerID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// ListByRide handles listing a ride's reservations for its driver
func (h *ReservationHandler) ListByRide(c echo.Context) error {
	requesterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	confirmedOnly := c.QueryParam("status") == "confirmed"

	list, err := h.reservationUC.ListByRide(c.Request().Context(), rideID, requesterID, confirmedOnly)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reservations retrieved successfully", list)
}

// ListOwn handles listing the authenticated passenger's reservations
func (h *ReservationHandler) ListOwn(c echo.Context) error {
	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	p := utils.ParsePagination(c)

	list, total, err := h.reservationUC.ListOwn(c.Request().Context(), passengerID, p)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.JSON(http.StatusOK, utils.PaginatedResponse{
		Data: list,
		Meta: utils.BuildMeta(total, p),
	})
}

// Confirm handles reservation confirmation requests
func (h *ReservationHandler) Confirm(c echo.Context) error {
	requesterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	reservation, err := h.reservationUC.Confirm(c.Request().Context(), reservationID, requesterID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reservation confirmed successfully", reservation)
}

// Cancel handles reservation cancellation requests
func (h *ReservationHandler) Cancel(c echo.Context) error {
	requesterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	if err := h.reservationUC.Cancel(c.Request().Context(), reservationID, requesterID); err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reservation cancelled successfully", nil)
}
