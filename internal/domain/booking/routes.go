package booking

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes for any authenticated principal.
// clientOnly guards booking creation.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, clientOnly gin.HandlerFunc) {
	rg.POST("/bookings", clientOnly, h.CreateBooking)
	rg.GET("/bookings", h.GetBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
}
