package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the read-only console; admin must already enforce AdminOnly.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/users", h.GetUsers)
	admin.GET("/providers", h.GetProviders)
	admin.GET("/subscriptions", h.GetSubscriptions)
	admin.GET("/services", h.GetServices)
	admin.GET("/bookings", h.GetBookings)
}
