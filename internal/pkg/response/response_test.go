package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/pkg/apperr"
)

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", apperr.New(apperr.KindNotFound, "booking not found"), http.StatusNotFound, "NOT_FOUND"},
		{"subscription", apperr.New(apperr.KindSubscriptionRequired, "active subscription required"), http.StatusPaymentRequired, "SUBSCRIPTION_REQUIRED"},
		{"already paid", apperr.New(apperr.KindAlreadyPaid, "booking already paid"), http.StatusConflict, "ALREADY_PAID"},
		{"self booking", apperr.New(apperr.KindSelfBooking, "you cannot book your own service"), http.StatusBadRequest, "SELF_BOOKING"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rr)

			FromError(c, tc.err)

			assert.Equal(t, tc.status, rr.Code)
			var body struct {
				Success bool `json:"success"`
				Error   struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}
}
