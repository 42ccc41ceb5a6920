package message

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/internal/middleware"
	"marketplace/internal/pkg/response"
)

type SendMessageRequest struct {
	BookingID int64  `json:"booking_id" binding:"required,gt=0"`
	Content   string `json:"content" binding:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SendMessage godoc
// @Summary Post a message in a booking conversation
// @Tags Messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body SendMessageRequest true "Message"
// @Success 201 {object} Message
// @Failure 403 {object} map[string]interface{}
// @Router /messages [post]
func (h *Handler) SendMessage(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	msg, err := h.service.Create(c.Request.Context(), req.BookingID, req.Content, p.UserID())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, msg)
}

// GetMessages godoc
// @Summary List the conversation of a booking
// @Tags Messages
// @Security BearerAuth
// @Produce json
// @Param id path int true "Booking ID"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {array} Message
// @Router /bookings/{id}/messages [get]
func (h *Handler) GetMessages(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid booking id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	msgs, err := h.service.ListByBooking(c.Request.Context(), bookingID, p.UserID(), limit, offset)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msgs)
}
