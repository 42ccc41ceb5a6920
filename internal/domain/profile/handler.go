package profile

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

// GetProvider godoc
// @Summary Public provider profile
// @Description Provider name, published services and rating across all of them
// @Tags Providers
// @Produce json
// @Param id path integer true "Provider ID"
// @Success 200 {object} ProviderProfile
// @Failure 404 {object} map[string]interface{}
// @Router /providers/{id} [get]
func (h *Handler) GetProvider(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid provider id")
		return
	}

	p, err := h.service.Provider(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}
