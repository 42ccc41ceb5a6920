package subscription

import (
	"github.com/gin-gonic/gin"

	"marketplace/internal/middleware"
	"marketplace/internal/pkg/response"
)

// RequireActiveSubscription blocks providers without an active subscription.
// It must run after middleware.JWTAuth.
func RequireActiveSubscription(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := middleware.MustPrincipal(c)
		if p == nil {
			return
		}
		if err := svc.RequireEntitled(c.Request.Context(), p); err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
