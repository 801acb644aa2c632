package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caronalabs/carona/internal/pkg/middleware"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
	"github.com/caronalabs/carona/services/vehicles"
)

// VehicleHandler handles HTTP requests for vehicle operations
type VehicleHandler struct {
	vehicleUC vehicles.VehicleUC
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleUC vehicles.VehicleUC) *VehicleHandler {
	return &VehicleHandler{vehicleUC: vehicleUC}
}

// RegisterRoutes wires vehicle endpoints, all authenticated
func (h *VehicleHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	g := e.Group("/vehicles", middleware.JWTAuthMiddleware(jwtConfig))
	g.POST("", h.Register)
	g.GET("", h.ListOwn)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Deactivate)
	g.POST("/:id/reactivate", h.Reactivate)
}

// Register handles vehicle registration requests
func (h *VehicleHandler) Register(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RegisterVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	vehicle, err := h.vehicleUC.Register(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle registered successfully", vehicle)
}

// ListOwn handles listing the authenticated user's vehicles
func (h *VehicleHandler) ListOwn(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.vehicleUC.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved successfully", list)
}

// Update handles partial vehicle update requests
func (h *VehicleHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	var req models.UpdateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	vehicle, err := h.vehicleUC.Update(c.Request().Context(), vehicleID, userID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle updated successfully", vehicle)
}

// Deactivate handles vehicle deactivation requests
func (h *VehicleHandler) Deactivate(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	if err := h.vehicleUC.Deactivate(c.Request().Context(), vehicleID, userID); err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle deactivated successfully", nil)
}

// Reactivate handles vehicle reactivation requests
func (h *VehicleHandler) Reactivate(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	vehicle, err := h.vehicleUC.Reactivate(c.Request().Context(), vehicleID, userID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle reactivated successfully", vehicle)
}
