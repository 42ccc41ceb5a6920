package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// pageParams returns the normalized page and limit.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	limit, offset := Page(page, limit)
	return offset/limit + 1, limit
}

// GetUsers godoc
// @Summary List users
// @Tags Admin
// @Security BearerAuth
// @Param role query string false "CLIENT, PROVIDER or ADMIN"
// @Param search query string false "Name or email"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/users [get]
func (h *Handler) GetUsers(c *gin.Context) {
	page, limit := pageParams(c)

	users, total, err := h.service.ListUsers(c.Request.Context(), c.Query("role"), c.Query("search"), page, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetProviders godoc
// @Summary List providers with their subscription
// @Tags Admin
// @Security BearerAuth
// @Param search query string false "Name or email"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/providers [get]
func (h *Handler) GetProviders(c *gin.Context) {
	page, limit := pageParams(c)

	providers, total, err := h.service.ListProviders(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"providers": providers,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

// GetSubscriptions godoc
// @Summary List subscriptions
// @Tags Admin
// @Security BearerAuth
// @Param status query string false "ACTIVE or EXPIRED"
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/subscriptions [get]
func (h *Handler) GetSubscriptions(c *gin.Context) {
	page, limit := pageParams(c)

	subs, total, err := h.service.ListSubscriptions(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"subscriptions": subs,
		"total":         total,
		"page":          page,
		"limit":         limit,
	})
}

// GetServices godoc
// @Summary List services
// @Tags Admin
// @Security BearerAuth
// @Param category_id query int false "Category"
// @Param search query string false "Title or description"
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/services [get]
func (h *Handler) GetServices(c *gin.Context) {
	page, limit := pageParams(c)
	categoryID, _ := strconv.ParseInt(c.Query("category_id"), 10, 64)

	services, total, err := h.service.ListServices(c.Request.Context(), categoryID, c.Query("search"), page, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"services": services,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// GetBookings godoc
// @Summary List bookings
// @Tags Admin
// @Security BearerAuth
// @Param status query string false "PENDING, CONFIRMED, CANCELLED or COMPLETED"
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/bookings [get]
func (h *Handler) GetBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}
