package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "http://localhost:5000", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.URI)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.IsDev)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LMS_API_URL", "https://lms.example.com/")
	t.Setenv("REDIS_URI", "redis.internal:6380")
	t.Setenv("SESSION_TTL", "1h")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "https://lms.example.com", cfg.Upstream.BaseURL, "trailing slash is stripped")
	assert.Equal(t, "redis.internal:6380", cfg.Redis.URI)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}

func TestSanitizeGuardrails(t *testing.T) {
	cfg := AppConfig{
		HTTP:     HTTPConfig{Addr: "   "},
		Upstream: UpstreamConfig{BaseURL: " http://lms:5000/ ", Timeout: -1},
		Session:  SessionConfig{TTL: 0},
	}
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "http://lms:5000", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
}

func TestDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}
