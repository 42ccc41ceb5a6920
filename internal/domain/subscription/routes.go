package subscription

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the pricing endpoint
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/subscriptions/plans", h.GetPlans)
}

// RegisterProviderRoutes expects r to be guarded by JWTAuth and RequireRole(PROVIDER).
func RegisterProviderRoutes(r *gin.RouterGroup, h *Handler) {
	sub := r.Group("/subscriptions")
	{
		sub.POST("", h.Subscribe)
		sub.GET("/me", h.GetMine)
		sub.GET("/status", h.CheckStatus)
		sub.PATCH("/plan", h.ChangePlan)
	}
}
