package payment

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

// ProcessPayment godoc
// @Summary Pay for a booking
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body ProcessPaymentRequest true "Booking and amount"
// @Success 201 {object} Payment
// @Failure 403 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /payments [post]
func (h *Handler) ProcessPayment(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	pay, err := h.service.ProcessPayment(c.Request.Context(), req.BookingID, req.Amount, p.UserID())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, pay)
}

// GetBookingPayment godoc
// @Summary Get the payment of a booking
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} Payment
// @Failure 404 {object} map[string]interface{}
// @Router /bookings/{id}/payment [get]
func (h *Handler) GetBookingPayment(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid booking id")
		return
	}

	pay, err := h.service.GetByBooking(c.Request.Context(), bookingID, p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, pay)
}
