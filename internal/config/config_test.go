package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 0.0.0.0
  port: 9090
validation:
  email_pattern: '^[a-z]+@ignite\.com$'
  cache_ttl_seconds: 120
redis:
  addr: localhost:6379
issuer:
  recent_capacity: 25
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, `^[a-z]+@ignite\.com$`, cfg.Validation.EmailPattern)
	assert.Equal(t, 120, cfg.Validation.CacheTTLSeconds)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 25, cfg.Issuer.RecentCapacity)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `server: {}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 15, cfg.Server.ReadTimeoutSeconds)
	assert.Equal(t, 15, cfg.Server.WriteTimeoutSeconds)
	assert.Equal(t, 3600, cfg.Validation.CacheTTLSeconds)
	assert.Equal(t, 100, cfg.Issuer.RecentCapacity)
	assert.Empty(t, cfg.Redis.Addr, "cache is opt-in")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
`)

	t.Setenv("PORT", "7070")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("EMAIL_PATTERN", `^.+@.+$`)

	cfg, err := LoadFromEnv(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, `^.+@.+$`, cfg.Validation.EmailPattern)
}

func TestGetHost(t *testing.T) {
	assert.Equal(t, "localhost", ServerConfig{}.GetHost())
	assert.Equal(t, "0.0.0.0", ServerConfig{Host: "0.0.0.0"}.GetHost())
}
