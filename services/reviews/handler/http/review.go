package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caronalabs/carona/internal/pkg/middleware"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/internal/utils"
	"github.com/caronalabs/carona/services/reviews"
)

// ReviewHandler handles HTTP requests for review operations
type ReviewHandler struct {
	reviewUC reviews.ReviewUC
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewUC reviews.ReviewUC) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC}
}

// RegisterRoutes wires review endpoints, all authenticated
func (h *ReviewHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	g := e.Group("", middleware.JWTAuthMiddleware(jwtConfig))
	g.POST("/reviews", h.Create)
	g.PATCH("/reviews/:id", h.Update)
	g.DELETE("/reviews/:id", h.Delete)
	g.GET("/users/:id/reviews", h.ListByReviewee)
}

// Create handles review creation requests
func (h *ReviewHandler) Create(c echo.Context) error {
	reviewerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	review, err := h.reviewUC.Create(c.Request().Context(), reviewerID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review created successfully", review)
}

// Update handles review edit requests
func (h *ReviewHandler) Update(c echo.Context) error {
	requesterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	var req models.UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	review, err := h.reviewUC.Update(c.Request().Context(), reviewID, requesterID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Review updated successfully", review)
}

// Delete handles review deletion requests
func (h *ReviewHandler) Delete(c echo.Context) error {
	requesterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	if err := h.reviewUC.Delete(c.Request().Context(), reviewID, requesterID); err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Review deleted successfully", nil)
}

// ListByReviewee handles listing the reviews a user received
func (h *ReviewHandler) ListByReviewee(c echo.Context) error {
	revieweeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	p := utils.ParsePagination(c)

	list, total, err := h.reviewUC.ListByReviewee(c.Request().Context(), revieweeID, p)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.JSON(http.StatusOK, utils.PaginatedResponse{
		Data: list,
		Meta: utils.BuildMeta(total, p),
	})
}
