package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv_FallsBackWhenUnset(t *testing.T) {
	t.Setenv("EXPLORER_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnv("EXPLORER_TEST_KEY", "fallback"))

	t.Setenv("EXPLORER_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("EXPLORER_TEST_KEY", "fallback"))
}

func TestRedisConfig_ReadsPortFromItsOwnKey(t *testing.T) {
	t.Setenv("R_HOST", "cache.local")
	t.Setenv("R_PORT", "6380")
	t.Setenv("R_PASS", "hunter2")
	t.Setenv("R_DB", "3")

	host, port, password, db := RedisConfig()
	assert.Equal(t, "cache.local", host)
	assert.Equal(t, "6380", port)
	assert.Equal(t, "hunter2", password)
	assert.Equal(t, 3, db)
}

func TestJikan_Defaults(t *testing.T) {
	t.Setenv("JIKAN_BASE_URL", "")
	t.Setenv("JIKAN_TIMEOUT", "")
	t.Setenv("JIKAN_RATE_PER_SEC", "")
	t.Setenv("USER_AGENT", "")

	cfg := Jikan()
	assert.Equal(t, "https://api.jikan.moe/v4", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3.0, cfg.RatePerSec)
	assert.Equal(t, "AnimeExplorer/1.0", cfg.UserAgent)
}

func TestJikan_TrimsTrailingSlashAndIgnoresBadNumbers(t *testing.T) {
	t.Setenv("JIKAN_BASE_URL", "http://localhost:9000/v4/")
	t.Setenv("JIKAN_TIMEOUT", "soon")
	t.Setenv("JIKAN_RATE_PER_SEC", "-1")

	cfg := Jikan()
	assert.Equal(t, "http://localhost:9000/v4", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3.0, cfg.RatePerSec)
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " https://a.example, ,https://b.example ")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, GetEnvList("CORS_ORIGINS", nil))

	t.Setenv("CORS_ORIGINS", " , ")
	assert.Equal(t, []string{"*"}, GetEnvList("CORS_ORIGINS", []string{"*"}))
}

func TestServer_SessionStoreIsLowercased(t *testing.T) {
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("SESSION_TTL", "15m")

	cfg := Server()
	assert.Equal(t, "redis", cfg.SessionStore)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
}
