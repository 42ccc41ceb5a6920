package catalog

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/categories", h.GetCategories)

	services := r.Group("/services")
	{
		services.GET("", h.GetServices)
		services.GET("/:id", h.GetService)
	}
}

// RegisterProviderRoutes expects r to be guarded by JWTAuth and RequireRole(PROVIDER).
// publishGuard runs in front of POST /services only.
func (h *Handler) RegisterProviderRoutes(r *gin.RouterGroup, publishGuard gin.HandlerFunc) {
	r.GET("/services/mine", h.GetMyServices)
	r.POST("/services", publishGuard, h.CreateService)
	r.PATCH("/services/:id", h.UpdateService)
	r.DELETE("/services/:id", h.DeleteService)
}
