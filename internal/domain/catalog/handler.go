package catalog

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

/* ---------- PUBLIC ---------- */

// GetServices godoc
// @Summary List services
// @Description Public catalog with filtering by category, provider, price and title search.
// @Tags Catalog
// @Produce json
// @Param category_id query integer false "Category filter"
// @Param provider_id query integer false "Provider filter"
// @Param search query string false "Search in title and description"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param sort_by query string false "price, title or created_at"
// @Param sort_order query string false "asc or desc"
// @Param limit query integer false "Page size (max 100)"
// @Param offset query integer false "Offset"
// @Success 200 {object} ListResponse
// @Router /services [get]
func (h *Handler) GetServices(c *gin.Context) {
	var f ListFilters

	f.Search = c.Query("search")
	f.SortBy = c.DefaultQuery("sort_by", "created_at")
	f.SortOrder = c.DefaultQuery("sort_order", "desc")

	if v, err := strconv.ParseInt(c.Query("category_id"), 10, 64); err == nil {
		f.CategoryID = v
	}
	if v, err := strconv.ParseInt(c.Query("provider_id"), 10, 64); err == nil {
		f.ProviderID = v
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		f.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		f.MaxPrice = v
	}

	// Pagination
	f.Limit = 20
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		f.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		f.Offset = v
	}

	listings, total, err := h.service.FindAll(c.Request.Context(), f)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ListResponse{
		Services: listings,
		Total:    total,
		Limit:    f.Limit,
		Offset:   f.Offset,
	})
}

// GetService godoc
// @Summary Get a service
// @Tags Catalog
// @Produce json
// @Param id path integer true "Service ID"
// @Success 200 {object} Listing
// @Failure 404 {object} map[string]interface{}
// @Router /services/{id} [get]
func (h *Handler) GetService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	l, err := h.service.FindOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// GetCategories godoc
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} Category
// @Router /categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	cats, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cats)
}

/* ---------- PROVIDER ---------- */

// CreateService godoc
// @Summary Publish a service
// @Description Requires an active subscription. BASIC plans are limited to 3 services.
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateInput true "Service"
// @Success 201 {object} Listing
// @Failure 402 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /services [post]
func (h *Handler) CreateService(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	l, err := h.service.Create(c.Request.Context(), p.UserID(), in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, l)
}

// GetMyServices godoc
// @Summary List services of the authenticated provider
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {array} Listing
// @Router /services/mine [get]
func (h *Handler) GetMyServices(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	listings, err := h.service.FindByProvider(c.Request.Context(), p.UserID())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, listings)
}

// UpdateService godoc
// @Summary Update own service
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path integer true "Service ID"
// @Param body body UpdateInput true "Fields to change"
// @Success 200 {object} Listing
// @Failure 403 {object} map[string]interface{}
// @Router /services/{id} [patch]
func (h *Handler) UpdateService(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	l, err := h.service.Update(c.Request.Context(), id, p.UserID(), in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// DeleteService godoc
// @Summary Delete own service
// @Tags Catalog
// @Security BearerAuth
// @Param id path integer true "Service ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /services/{id} [delete]
func (h *Handler) DeleteService(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), id, p.UserID()); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
		return 0, false
	}
	return id, true
}
