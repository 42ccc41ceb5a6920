package review

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/internal/middleware"
	"marketplace/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary Review a completed booking
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateReviewRequest true "Review"
// @Success 201 {object} Review
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /reviews [post]
func (h *Handler) Create(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rv, err := h.service.Create(c.Request.Context(), req.BookingID, req.Rating, req.Comment, p.UserID())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rv)
}

// GetByService godoc
// @Summary List reviews of a service
// @Tags Reviews
// @Produce json
// @Param id path integer true "Service ID"
// @Param limit query integer false "Page size"
// @Param offset query integer false "Offset"
// @Success 200 {object} ServiceReviewsResponse
// @Router /services/{id}/reviews [get]
func (h *Handler) GetByService(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || serviceID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid service id")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, summary, err := h.service.FindAllByService(c.Request.Context(), serviceID, limit, offset)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ServiceReviewsResponse{Reviews: reviews, Summary: summary})
}
