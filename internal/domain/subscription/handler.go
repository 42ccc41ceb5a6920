package subscription

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/middleware"
	"marketplace/internal/pkg/response"
)

// Handler handles HTTP requests for provider subscriptions.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetPlans godoc
// @Summary List subscription plans
// @Tags Subscriptions
// @Produce json
// @Success 200 {array} PlanResponse
// @Router /subscriptions/plans [get]
func (h *Handler) GetPlans(c *gin.Context) {
	response.Success(c, http.StatusOK, availablePlans())
}

// Subscribe godoc
// @Summary Start a subscription term
// @Tags Subscriptions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body SubscribeRequest true "Amount and plan"
// @Success 201 {object} SubscriptionResponse
// @Failure 409 {object} map[string]interface{}
// @Router /subscriptions [post]
func (h *Handler) Subscribe(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	sub, err := h.service.Create(c.Request.Context(), p.UserID(), req.Amount, req.Plan)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, toResponse(sub, h.service.now()))
}

// GetMine godoc
// @Summary Get the current subscription of the authenticated provider
// @Tags Subscriptions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SubscriptionResponse
// @Failure 404 {object} map[string]interface{}
// @Router /subscriptions/me [get]
func (h *Handler) GetMine(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	sub, err := h.service.GetMine(c.Request.Context(), p.UserID())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toResponse(sub, h.service.now()))
}

// CheckStatus godoc
// @Summary Check whether the provider may publish services
// @Tags Subscriptions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /subscriptions/status [get]
func (h *Handler) CheckStatus(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	status, err := h.service.CheckStatus(c.Request.Context(), p.UserID())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, StatusResponse{
		IsActive:     status.IsActive,
		Subscription: toResponse(status.Subscription, h.service.now()),
	})
}

// ChangePlan godoc
// @Summary Switch the plan of the running term
// @Tags Subscriptions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body ChangePlanRequest true "Target plan"
// @Success 200 {object} SubscriptionResponse
// @Failure 402 {object} map[string]interface{}
// @Router /subscriptions/plan [patch]
func (h *Handler) ChangePlan(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	if p == nil {
		return
	}

	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	sub, err := h.service.ChangePlan(c.Request.Context(), p.UserID(), req.Plan, req.Amount)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toResponse(sub, h.service.now()))
}
