package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caronalabs/carona/internal/pkg/middleware"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
	"github.com/caronalabs/carona/services/messages"
)

// MessageHandler handles HTTP requests for in-ride messaging
type MessageHandler struct {
	messageUC messages.MessageUC
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageUC messages.MessageUC) *MessageHandler {
	return &MessageHandler{messageUC: messageUC}
}

// RegisterRoutes wires messaging endpoints, all authenticated
func (h *MessageHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	g := e.Group("", middleware.JWTAuthMiddleware(jwtConfig))
	g.POST("/messages", h.Send)
	g.GET("/rides/:id/messages", h.ListByRide)
}

// Send handles message send requests
func (h *MessageHandler) Send(c echo.Context) error {
	senderID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	message, err := h.messageUC.Send(c.Request().Context(), senderID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Message sent successfully", message)
}

// ListByRide handles listing a ride's messages for a participant
func (h *MessageHandler) ListByRide(c echo.Context) error {
	requesterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	p := utils.ParsePagination(c)

	list, total, err := h.messageUC.ListByRide(c.Request().Context(), rideID, requesterID, p)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.JSON(http.StatusOK, utils.PaginatedResponse{
		Data: list,
		Meta: utils.BuildMeta(total, p),
	})
}
