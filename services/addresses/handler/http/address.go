package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caronalabs/carona/internal/pkg/middleware"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
	"github.com/caronalabs/carona/services/addresses"
)

// AddressHandler handles HTTP requests for saved address operations
type AddressHandler struct {
	addressUC addresses.AddressUC
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(addressUC addresses.AddressUC) *AddressHandler {
	return &AddressHandler{addressUC: addressUC}
}

// RegisterRoutes wires saved address endpoints, all authenticated
func (h *AddressHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	g := e.Group("/addresses", middleware.JWTAuthMiddleware(jwtConfig))
	g.POST("", h.Create)
	g.GET("", h.ListOwn)
	g.DELETE("/:id", h.Delete)
}

// Create handles saved address creation requests
func (h *AddressHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	address, err := h.addressUC.CreateSaved(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Address saved successfully", address)
}

// ListOwn handles listing the authenticated user's saved addresses
func (h *AddressHandler) ListOwn(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.addressUC.ListSaved(c.Request().Context(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Addresses retrieved successfully", list)
}

// Delete handles saved address deletion requests
func (h *AddressHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid address ID")
	}

	if err := h.addressUC.Delete(c.Request().Context(), addressID, userID); err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Address deleted successfully", nil)
}
