package message

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/messages", h.SendMessage)
	protected.GET("/bookings/:id/messages", h.GetMessages)
}
