package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"marketplace/internal/config"
	"marketplace/internal/domain/auth"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	tokens map[string]string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:app_%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(Models()...))

	cfg := &config.Config{
		AppEnv:    "test",
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}
	a := New(Deps{Config: cfg, DB: db, Log: zerolog.Nop()})
	require.NoError(t, a.Catalog.SeedCategories(t.Context()))

	users := []auth.User{
		{ID: 1, Email: "pro@example.com", Role: auth.RoleProvider, Name: "Pro Plumbing"},
		{ID: 2, Email: "alice@example.com", Role: auth.RoleClient, Name: "Alice"},
		{ID: 3, Email: "newbie@example.com", Role: auth.RoleProvider, Name: "Newbie"},
		{ID: 4, Email: "ops@example.com", Role: auth.RoleAdmin, Name: "Ops"},
	}
	require.NoError(t, db.Create(&users).Error)

	s := &testServer{t: t, router: a.Router, tokens: map[string]string{}}
	for key, u := range map[string]auth.User{"provider": users[0], "client": users[1], "unsubscribed": users[2], "admin": users[3]} {
		tok, err := a.JWT.GenerateToken(u.ID, string(u.Role))
		require.NoError(t, err)
		s.tokens[key] = tok
	}
	return s
}

func (s *testServer) do(method, path, as string, body any) (int, envelope) {
	s.t.Helper()

	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if as != "" {
		req.Header.Set("Authorization", "Bearer "+s.tokens[as])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHealthAndAuthBoundary(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)

	code, env := s.do(http.MethodGet, "/api/v1/categories", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]any](t, env.Data), 8)

	code, _ = s.do(http.MethodGet, "/api/v1/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(http.MethodPost, "/api/v1/subscriptions", "client", map[string]any{"amount": 10})
	assert.Equal(t, http.StatusForbidden, code)

	code, env = s.do(http.MethodGet, "/api/v1/users/me", "client", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice@example.com", decode[auth.User](t, env.Data).Email)
}

func TestPublishRequiresSubscription(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodPost, "/api/v1/services", "unsubscribed", map[string]any{
		"category_id": 1, "title": "Garden work", "price": 30,
	})
	assert.Equal(t, http.StatusPaymentRequired, code)
	assert.Equal(t, "SUBSCRIPTION_REQUIRED", env.Error.Code)
}

func TestBookingLifecycleEndToEnd(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodPost, "/api/v1/subscriptions", "provider", map[string]any{"amount": 99, "plan": "PREMIUM"})
	require.Equal(t, http.StatusCreated, code, env.Error.Message)

	code, env = s.do(http.MethodPost, "/api/v1/services", "provider", map[string]any{
		"category_id": 1, "title": "Kitchen plumbing", "description": "Leaks and taps", "price": 45,
	})
	require.Equal(t, http.StatusCreated, code, env.Error.Message)
	serviceID := decode[struct {
		ID int64 `json:"id"`
	}](t, env.Data).ID

	code, env = s.do(http.MethodPost, "/api/v1/bookings", "client", map[string]any{
		"service_id": serviceID, "date": "2026-03-10T09:00:00Z",
	})
	require.Equal(t, http.StatusCreated, code, env.Error.Message)
	created := decode[struct {
		ID         int64  `json:"id"`
		ProviderID int64  `json:"provider_id"`
		Status     string `json:"status"`
	}](t, env.Data)
	assert.Equal(t, "PENDING", created.Status)
	assert.Equal(t, int64(1), created.ProviderID)

	statusPath := fmt.Sprintf("/api/v1/bookings/%d/status", created.ID)

	// a client may only cancel
	code, env = s.do(http.MethodPatch, statusPath, "client", map[string]any{"status": "CONFIRMED"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)

	code, env = s.do(http.MethodPatch, statusPath, "provider", map[string]any{"status": "CONFIRMED"})
	require.Equal(t, http.StatusOK, code, env.Error.Message)

	code, env = s.do(http.MethodGet, "/api/v1/notifications", "client", nil)
	require.Equal(t, http.StatusOK, code)
	feed := decode[struct {
		Notifications []struct {
			Message string `json:"message"`
		} `json:"notifications"`
		Unread int64 `json:"unread"`
	}](t, env.Data)
	require.NotEmpty(t, feed.Notifications)
	assert.Contains(t, feed.Notifications[0].Message, "Kitchen plumbing")
	assert.Contains(t, feed.Notifications[0].Message, "has been confirmed")
	assert.Equal(t, int64(1), feed.Unread)

	code, _ = s.do(http.MethodPost, "/api/v1/payments", "client", map[string]any{"booking_id": created.ID, "amount": 45})
	require.Equal(t, http.StatusCreated, code)
	code, env = s.do(http.MethodPost, "/api/v1/payments", "client", map[string]any{"booking_id": created.ID, "amount": 45})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "ALREADY_PAID", env.Error.Code)

	code, _ = s.do(http.MethodPost, "/api/v1/messages", "client", map[string]any{"booking_id": created.ID, "content": "Please bring spare washers"})
	require.Equal(t, http.StatusCreated, code)
	code, env = s.do(http.MethodGet, fmt.Sprintf("/api/v1/bookings/%d/messages", created.ID), "provider", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]any](t, env.Data), 1)

	review := map[string]any{"booking_id": created.ID, "rating": 5, "comment": "Fixed in no time"}
	code, env = s.do(http.MethodPost, "/api/v1/reviews", "client", review)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "NOT_COMPLETED", env.Error.Code)

	code, env = s.do(http.MethodPatch, statusPath, "provider", map[string]any{"status": "COMPLETED"})
	require.Equal(t, http.StatusOK, code, env.Error.Message)

	code, env = s.do(http.MethodPost, "/api/v1/reviews", "client", review)
	require.Equal(t, http.StatusCreated, code, env.Error.Message)
	code, env = s.do(http.MethodPost, "/api/v1/reviews", "client", review)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "ALREADY_REVIEWED", env.Error.Code)

	code, env = s.do(http.MethodGet, fmt.Sprintf("/api/v1/services/%d/reviews", serviceID), "", nil)
	require.Equal(t, http.StatusOK, code)
	summary := decode[struct {
		Summary struct {
			Average float64 `json:"average"`
			Count   int64   `json:"count"`
		} `json:"summary"`
	}](t, env.Data).Summary
	assert.Equal(t, int64(1), summary.Count)
	assert.InDelta(t, 5.0, summary.Average, 0.001)

	// completed is terminal
	code, _ = s.do(http.MethodPatch, statusPath, "client", map[string]any{"status": "CANCELLED"})
	assert.Equal(t, http.StatusConflict, code)
}

func TestProviderProfileAndAdminConsole(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodPost, "/api/v1/subscriptions", "provider", map[string]any{"amount": 49})
	require.Equal(t, http.StatusCreated, code, env.Error.Message)
	code, env = s.do(http.MethodPost, "/api/v1/services", "provider", map[string]any{
		"category_id": 2, "title": "Rewiring", "price": 120,
	})
	require.Equal(t, http.StatusCreated, code, env.Error.Message)

	code, env = s.do(http.MethodGet, "/api/v1/providers/1", "", nil)
	require.Equal(t, http.StatusOK, code, env.Error.Message)
	p := decode[struct {
		Name     string           `json:"name"`
		Email    string           `json:"email"`
		Services []map[string]any `json:"services"`
		Rating   struct {
			Count int64 `json:"count"`
		} `json:"rating"`
	}](t, env.Data)
	assert.Equal(t, "Pro Plumbing", p.Name)
	assert.Empty(t, p.Email)
	assert.Len(t, p.Services, 1)
	assert.Zero(t, p.Rating.Count)

	code, _ = s.do(http.MethodGet, "/api/v1/providers/2", "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodGet, "/api/v1/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	for _, as := range []string{"client", "provider"} {
		code, env = s.do(http.MethodGet, "/api/v1/admin/users", as, nil)
		assert.Equal(t, http.StatusForbidden, code, as)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	}

	code, env = s.do(http.MethodGet, "/api/v1/admin/users?role=PROVIDER", "admin", nil)
	require.Equal(t, http.StatusOK, code, env.Error.Message)
	users := decode[struct {
		Users []map[string]any `json:"users"`
		Total int64            `json:"total"`
		Page  int              `json:"page"`
	}](t, env.Data)
	assert.Equal(t, int64(2), users.Total)
	assert.Equal(t, 1, users.Page)

	code, env = s.do(http.MethodGet, "/api/v1/admin/users?role=ROOT", "admin", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(http.MethodGet, "/api/v1/admin/providers", "admin", nil)
	require.Equal(t, http.StatusOK, code, env.Error.Message)
	providers := decode[struct {
		Providers []struct {
			ID           int64          `json:"id"`
			Entitled     bool           `json:"entitled"`
			Subscription map[string]any `json:"subscription"`
		} `json:"providers"`
	}](t, env.Data).Providers
	require.Len(t, providers, 2)
	for _, pr := range providers {
		assert.Equal(t, pr.ID == 1, pr.Entitled, "provider %d", pr.ID)
		assert.Equal(t, pr.ID == 1, pr.Subscription != nil, "provider %d", pr.ID)
	}

	code, env = s.do(http.MethodGet, "/api/v1/admin/subscriptions?status=ACTIVE", "admin", nil)
	require.Equal(t, http.StatusOK, code, env.Error.Message)
	assert.Equal(t, int64(1), decode[struct {
		Total int64 `json:"total"`
	}](t, env.Data).Total)

	code, env = s.do(http.MethodGet, "/api/v1/admin/services?category_id=2", "admin", nil)
	require.Equal(t, http.StatusOK, code, env.Error.Message)
	assert.Equal(t, int64(1), decode[struct {
		Total int64 `json:"total"`
	}](t, env.Data).Total)

	code, env = s.do(http.MethodGet, "/api/v1/admin/bookings?status=PENDING", "admin", nil)
	require.Equal(t, http.StatusOK, code, env.Error.Message)
	assert.Zero(t, decode[struct {
		Total int `json:"total"`
	}](t, env.Data).Total)
}
