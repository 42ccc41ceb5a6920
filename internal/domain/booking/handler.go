package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/internal/domain/auth"
	"marketplace/internal/middleware"
	"marketplace/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking godoc
// @Summary Book a service
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateBookingRequest true "Service and date (RFC 3339)"
// @Success 201 {object} Booking
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), req.ServiceID, req.Date, p.UserID())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

// GetBookings godoc
// @Summary List bookings visible to the caller
// @Description Clients see their bookings, providers the bookings of their services, admins all bookings.
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} Details
// @Router /bookings [get]
func (h *Handler) GetBookings(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	list, err := h.service.FindAll(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// GetBooking godoc
// @Summary Get a booking
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} BookingResponse
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /bookings/{id} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.FindOne(c.Request.Context(), id, p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, withAllowed(b, p))
}

// UpdateBookingStatus godoc
// @Summary Change the status of a booking
// @Description Clients may only cancel. Providers confirm, cancel or complete their own bookings.
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Param body body UpdateStatusRequest true "Target status"
// @Success 200 {object} BookingResponse
// @Failure 403 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /bookings/{id}/status [patch]
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status, p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, withAllowed(b, p))
}

func withAllowed(b *Booking, p auth.Principal) BookingResponse {
	return BookingResponse{Booking: b, AllowedStatuses: AllowedTargets(p.Role(), b.Status)}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid booking id")
		return 0, false
	}
	return id, true
}
