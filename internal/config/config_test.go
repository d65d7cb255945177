package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	configPath := writeConfig(t, `
server:
  port: 9090
  host: "0.0.0.0"
  shutdown_timeout_seconds: 5

dataset:
  seed: 7
  first_id: 5000

messaging:
  success_rate: 0.9
  log_backend: "redis"
  redis:
    addr: "redis:6379"
    db: 2
  postgres:
    database_url: "postgres://localhost/petcrm"

cors:
  allowed_origins:
    - "https://app.example.com"
`)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	// Test server config
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeoutSeconds)

	// Test dataset config
	assert.Equal(t, int64(7), cfg.Dataset.Seed)
	assert.Equal(t, 5000, cfg.Dataset.FirstID)

	// Test messaging config
	assert.Equal(t, 0.9, cfg.Messaging.SuccessRate)
	assert.Equal(t, "redis", cfg.Messaging.LogBackend)
	assert.Equal(t, "redis:6379", cfg.Messaging.Redis.Addr)
	assert.Equal(t, 2, cfg.Messaging.Redis.DB)
	assert.Equal(t, "postgres://localhost/petcrm", cfg.Messaging.Postgres.DatabaseURL)

	// Test CORS config
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadDefaults(t *testing.T) {
	configPath := writeConfig(t, `
server: {}
`)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	// Verify defaults are applied
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, int64(42), cfg.Dataset.Seed)
	assert.Equal(t, 1000, cfg.Dataset.FirstID)
	assert.Equal(t, 0.95, cfg.Messaging.SuccessRate)
	assert.Equal(t, "memory", cfg.Messaging.LogBackend)
	assert.Equal(t, "localhost:6379", cfg.Messaging.Redis.Addr)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	configPath := writeConfig(t, `
messaging:
  log_backend: "dynamodb"
`)

	_, err := Load(configPath)
	assert.ErrorContains(t, err, "dynamodb")
}

func TestLoadFromEnv(t *testing.T) {
	configPath := writeConfig(t, `
server:
  port: 9090

messaging:
  log_backend: "memory"
`)

	os.Setenv("SERVER_PORT", "7070")
	os.Setenv("MESSAGE_LOG_BACKEND", "postgres")
	os.Setenv("DATABASE_URL", "postgres://env-host/petcrm")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("MESSAGE_LOG_BACKEND")
		os.Unsetenv("DATABASE_URL")
	}()

	cfg, err := LoadFromEnv(configPath)
	require.NoError(t, err)

	// Environment variables should override file values
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Messaging.LogBackend)
	assert.Equal(t, "postgres://env-host/petcrm", cfg.Messaging.Postgres.DatabaseURL)
}

func TestLoadFromEnvInvalidPort(t *testing.T) {
	configPath := writeConfig(t, `server: {}`)

	os.Setenv("SERVER_PORT", "not-a-port")
	defer os.Unsetenv("SERVER_PORT")

	_, err := LoadFromEnv(configPath)
	assert.ErrorContains(t, err, "SERVER_PORT")
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestGetHost(t *testing.T) {
	cfg := ServerConfig{Host: "localhost"}
	assert.Equal(t, "localhost", cfg.GetHost())

	os.Setenv("SERVER_HOST", "0.0.0.0")
	defer os.Unsetenv("SERVER_HOST")
	assert.Equal(t, "0.0.0.0", cfg.GetHost())
}

func TestShutdownTimeout(t *testing.T) {
	cfg := ServerConfig{ShutdownTimeoutSeconds: 5}
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout())
}
