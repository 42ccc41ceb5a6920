package review

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup, clientOnly gin.HandlerFunc) {
	// Public routes (no auth required)
	if public != nil {
		public.GET("/services/:id/reviews", h.GetByService)
	}

	// Protected routes (auth required)
	if protected != nil {
		protected.POST("/reviews", clientOnly, h.Create)
	}
}
