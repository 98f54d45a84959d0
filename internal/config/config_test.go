package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("POINTING_ADDR", ":9999")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("POINTING_SESSION_TTL_SECONDS", "600")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, 0, cfg.RedisDB)
}
