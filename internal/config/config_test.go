package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.App.StoreDriver)
	assert.Equal(t, "minio", cfg.Storage.Driver)
	assert.Equal(t, 5, cfg.Admin.MaxLoginAttempts)
	assert.Equal(t, 15, cfg.Admin.LockoutMinutes)
	assert.Equal(t, ":9999", cfg.Worker.HealthAddr)
}

func TestLoad_ParsesEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("STORAGE_PUBLIC_BASE_URL", "https://cdn.example.com/")
	t.Setenv("ADMIN_MAX_LOGIN_ATTEMPTS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.App.StoreDriver)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://cdn.example.com", cfg.Storage.PublicBaseURL)
	assert.Equal(t, 5, cfg.Admin.MaxLoginAttempts, "malformed ints fall back to the default")
}

func TestLoad_RejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown store", map[string]string{"STORE_DRIVER": "sqlite"}},
		{"unknown storage", map[string]string{"STORAGE_DRIVER": "gcs"}},
		{"s3 without bucket", map[string]string{"STORAGE_DRIVER": "s3"}},
		{"production default secret", map[string]string{"APP_ENV": "production", "ADMIN_PASSWORD_HASH": "$2a$10$x"}},
		{"production without admin hash", map[string]string{"APP_ENV": "production", "JWT_SECRET": "prod-secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_RETRY_DELAY", "250ms")

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, int32(10), cfg.MaxConns)
}

func TestLoadDatabaseConfig_ReportsEveryBadValue(t *testing.T) {
	t.Setenv("DB_PORT", "abc")
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")

	_, err := LoadDatabaseConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
	assert.Contains(t, err.Error(), "DB_CONNECT_TIMEOUT")
}

func TestLoadDatabaseConfig_MinAboveMax(t *testing.T) {
	t.Setenv("DB_MIN_CONNECTIONS", "20")

	_, err := LoadDatabaseConfig()
	assert.Error(t, err)
}
