package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caronalabs/carona/internal/pkg/middleware"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
	"github.com/caronalabs/carona/services/rides"
)

// RideHandler handles HTTP requests for ride operations
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{rideUC: rideUC}
}

// RegisterRoutes wires ride endpoints, all authenticated
func (h *RideHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	g := e.Group("/rides", middleware.JWTAuthMiddleware(jwtConfig))
	g.POST("", h.Create)
	g.GET("", h.Search)
	g.GET("/mine", h.ListOwn)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Cancel)
	g.POST("/:id/start", h.Start)
	g.POST("/:id/complete", h.Complete)
}

// Create handles ride creation requests
func (h *RideHandler) Create(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), driverID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride created successfully", ride)
}

// Search handles scheduled ride searches by city
func (h *RideHandler) Search(c echo.Context) error {
	p := utils.ParsePagination(c)

	list, total, err := h.rideUC.Search(c.Request().Context(),
		c.QueryParam("start_city"), c.QueryParam("destination_city"), p)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.JSON(http.StatusOK, utils.PaginatedResponse{
		Data: list,
		Meta: utils.BuildMeta(total, p),
	})
}

// ListOwn handles listing the authenticated driver's rides
func (h *RideHandler) ListOwn(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	p := utils.ParsePagination(c)

	list, total, err := h.rideUC.ListByDriver(c.Request().Context(), driverID, p)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.JSON(http.StatusOK, utils.PaginatedResponse{
		Data: list,
		Meta: utils.BuildMeta(total, p),
	})
}

// Get handles ride retrieval requests
func (h *RideHandler) Get(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// Update handles partial ride updates
func (h *RideHandler) Update(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.UpdateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.rideUC.UpdateRide(c.Request().Context(), rideID, driverID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride updated successfully", ride)
}

// Cancel handles ride cancellation requests
func (h *RideHandler) Cancel(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	if err := h.rideUC.CancelRide(c.Request().Context(), rideID, driverID); err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled successfully", nil)
}

// Start handles ride start requests
func (h *RideHandler) Start(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.StartRide(c.Request().Context(), rideID, driverID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride started successfully", ride)
}

// Complete handles ride completion requests
func (h *RideHandler) Complete(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.CompleteRide(c.Request().Context(), rideID, driverID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride completed successfully", ride)
}
