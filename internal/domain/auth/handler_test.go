package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T, p Principal) (*gin.Engine, UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:auth_%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&User{}))

	users := NewUserRepository(db)
	h := NewHandler(users, func(c *gin.Context) Principal { return p })

	r := gin.New()
	h.RegisterProtectedRoutes(r.Group("/api/v1"))
	return r, users
}

func TestGetMe(t *testing.T) {
	r, users := newTestRouter(t, Provider{ID: 1})
	require.NoError(t, users.Create(t.Context(), &User{Email: "pro@example.com", Role: RoleProvider, Name: "Pro", PasswordHash: "x"}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Contains(t, string(body.Data), `"email":"pro@example.com"`)
	assert.NotContains(t, string(body.Data), "password")
}

func TestGetMe_DeletedAccount(t *testing.T) {
	r, _ := newTestRouter(t, Client{ID: 42})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
