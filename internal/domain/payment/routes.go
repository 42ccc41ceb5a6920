package payment

import "github.com/gin-gonic/gin"

// RegisterProtectedRoutes expects r to be guarded by JWTAuth. clientOnly guards payment creation.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup, clientOnly gin.HandlerFunc) {
	r.POST("/payments", clientOnly, h.ProcessPayment)
	r.GET("/bookings/:id/payment", h.GetBookingPayment)
}
