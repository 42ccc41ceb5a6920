package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/internal/middleware"
	"marketplace/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetNotifications godoc
// @Summary List notifications
// @Description Newest first, with the number of unread notifications.
// @Tags Notifications
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} NotificationListResponse
// @Router /notifications [get]
func (h *Handler) GetNotifications(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	limit := 20
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = min(v, 100)
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}

	list, unread, err := h.service.List(c.Request.Context(), p.UserID(), limit, offset)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, NotificationListResponse{
		Notifications: list,
		Unread:        unread,
		Limit:         limit,
		Offset:        offset,
	})
}

// GetUnreadCount godoc
// @Summary Number of unread notifications
// @Tags Notifications
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /notifications/unread-count [get]
func (h *Handler) GetUnreadCount(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	unread, err := h.service.UnreadCount(c.Request.Context(), p.UserID())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread": unread})
}

// MarkAsRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /notifications/{id}/read [patch]
func (h *Handler) MarkAsRead(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid notification id")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id, p.UserID()); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "is_read": true})
}

// MarkAllAsRead godoc
// @Summary Mark every notification as read
// @Tags Notifications
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /notifications/read-all [post]
func (h *Handler) MarkAllAsRead(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	n, err := h.service.MarkAllAsRead(c.Request.Context(), p.UserID())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": n})
}
