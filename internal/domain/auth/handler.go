package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/pkg/apperr"
	"marketplace/internal/pkg/response"
)

// PrincipalFunc extracts the authenticated caller from the request. It is
// injected to keep this package free of the middleware import.
type PrincipalFunc func(c *gin.Context) Principal

type userGetter interface {
	GetByID(ctx context.Context, id int64) (*User, error)
}

// Handler serves the caller's own account
type Handler struct {
	users     userGetter
	principal PrincipalFunc
}

func NewHandler(users UserRepository, principal PrincipalFunc) *Handler {
	return &Handler{users: users, principal: principal}
}

// GetMe returns the authenticated user's profile.
// @Summary		Current user
// @Tags		Users
// @Security	BearerAuth
// @Produce		json
// @Success		200	{object}	User
// @Failure		401	{object}	map[string]interface{}
// @Router		/users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	p := h.principal(c)
	if p == nil {
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), p.UserID())
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			// token outlived the account
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "user no longer exists")
			return
		}
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}
