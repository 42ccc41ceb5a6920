package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "APP_ENV", "HTTP_ADDR", "JWT_TTL", "JWT_SECRET", "DATABASE_URL", "AMQP_URL", "AMQP_EXCHANGE",
		"NOTIFICATION_RETENTION", "NOTIFICATION_CLEANUP_INTERVAL", "WS_ALLOWED_ORIGINS")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "marketplace.events", cfg.AMQPExchange)
	assert.Equal(t, 90*24*time.Hour, cfg.NotificationRetention)
	assert.Empty(t, cfg.WSAllowedOrigins)
	assert.False(t, cfg.IsProdLike())
}

func TestLoad_ProdRequiresSecret(t *testing.T) {
	unsetenv(t, "JWT_TTL", "DATABASE_URL", "AMQP_URL", "AMQP_EXCHANGE")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProdLike())
}

func TestLoad_InvalidTTL(t *testing.T) {
	unsetenv(t, "DATABASE_URL", "AMQP_URL", "AMQP_EXCHANGE")
	t.Setenv("APP_ENV", "dev")
	t.Setenv("JWT_TTL", "-5m")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	unsetenv(t, "APP_ENV", "JWT_TTL", "DATABASE_URL", "AMQP_URL", "AMQP_EXCHANGE", "NOTIFICATION_RETENTION", "NOTIFICATION_CLEANUP_INTERVAL")
	t.Setenv("WS_ALLOWED_ORIGINS", "https://app.example.com,http://localhost:3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:3000"}, cfg.WSAllowedOrigins)
}
