package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "APP_PORT", "SESSION_TTL", "SESSION_COOKIE_SECURE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, logrus.InfoLevel, cfg.LogrusLevel())
}

func TestLoad_ProductionSecuresCookie(t *testing.T) {
	t.Setenv("APP_ENV", Production)
	t.Setenv("SESSION_COOKIE_SECURE", "")
	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.CookieSecure)
}

func TestLoadAPIConfig_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.in/v1/")
	t.Setenv("API_TIMEOUT", "3s")
	api := LoadAPIConfig()
	assert.Equal(t, "https://api.example.in/v1", api.BaseURL)
	assert.Equal(t, 3*time.Second, api.Timeout)
}

func TestLoadAPIConfig_EmptyBaseURLByDefault(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	assert.Equal(t, "", LoadAPIConfig().BaseURL)
}

func TestLoadRateLimitConfig_Clamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	rl := LoadRateLimitConfig()
	assert.Equal(t, 1, rl.Capacity)
	assert.Equal(t, 10*time.Second, rl.TTL)
}

func TestLoadCacheConfig_Methods(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head")
	cc := LoadCacheConfig()
	assert.True(t, cc.Methods["GET"])
	assert.True(t, cc.Methods["HEAD"])
	assert.False(t, cc.Methods["POST"])
}

func TestLoadEnv_SkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(present, []byte("RMM_TEST_ENV_LOAD=ok\n"), 0o644))
	t.Setenv("RMM_TEST_ENV_LOAD", "")
	require.NoError(t, os.Unsetenv("RMM_TEST_ENV_LOAD"))

	n, err := LoadEnv(present, filepath.Join(dir, ".env.local"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "ok", os.Getenv("RMM_TEST_ENV_LOAD"))
}

func TestLoadRedisConfig_HostPortWinOverAddr(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache.internal:6380")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_TLS", "1")
	rc := LoadRedisConfig()
	assert.Equal(t, "cache.internal:6380", rc.Addr)
	assert.Equal(t, 3, rc.DB)
	assert.True(t, rc.TLS)
	assert.NotNil(t, rc.options().TLSConfig)

	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6379")
	assert.Equal(t, "redis:6379", LoadRedisConfig().Addr)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(RedisConfig{Addr: mr.Addr(), PingTimeout: time.Second})
	require.NotNil(t, rdb)
	t.Cleanup(func() { _ = rdb.Close() })

	addr := mr.Addr()
	mr.Close()
	assert.Nil(t, NewRedisClient(RedisConfig{Addr: addr, PingTimeout: 200 * time.Millisecond}))
}
