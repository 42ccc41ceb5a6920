package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"marketplace/internal/middleware"
)

// WSHandler upgrades authenticated requests to the live notification feed.
type WSHandler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewWSHandler accepts any origin when allowedOrigins is empty.
func NewWSHandler(hub *Hub, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				return allowed[r.Header.Get("Origin")]
			},
		},
	}
}

// HandleWebSocket godoc
// @Summary Live notification feed
// @Description Browsers cannot set headers on websocket requests, pass the JWT as ?access_token=.
// @Tags Notifications
// @Security BearerAuth
// @Router /notifications/ws [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		_ = c.Error(err)
		return
	}

	h.hub.ServeWS(conn, p.UserID())
}
