package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.App.Host)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins)
	assert.Equal(t, BackendFile, cfg.Gallery.Backend)
	assert.Equal(t, "data", cfg.Gallery.DataDir)
	assert.Equal(t, int64(16<<20), cfg.Gallery.MaxUploadBytes)
	assert.Equal(t, 16, cfg.Postgres.MaxOpenConns)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "gallery-events", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Storage.Endpoint)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "50051", cfg.Health.Port)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "app override",
			envVars: map[string]string{
				"APP_PORT":            "9090",
				"APP_ALLOWED_ORIGINS": "http://a.test,http://b.test",
				"APP_RATE_LIMIT":      "0",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "9090", cfg.App.Port)
				assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)
				assert.Equal(t, 0, cfg.App.RateLimit)
			},
		},
		{
			name: "postgres backend",
			envVars: map[string]string{
				"GALLERY_BACKEND": "postgres",
				"POSTGRES_DSN":    "postgres://u:p@db:5432/g",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, BackendPostgres, cfg.Gallery.Backend)
				assert.Equal(t, "postgres://u:p@db:5432/g", cfg.Postgres.DSN)
			},
		},
		{
			name: "optional integrations",
			envVars: map[string]string{
				"REDIS_ADDR":     "redis:6379",
				"KAFKA_BROKERS":  "k1:9092,k2:9092",
				"MINIO_ENDPOINT": "minio:9000",
				"JWT_EXPIRATION": "90m",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "redis:6379", cfg.Redis.Addr)
				assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
				assert.Equal(t, "minio:9000", cfg.Storage.Endpoint)
				assert.Equal(t, 90*time.Minute, cfg.JWT.Expiration)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load("")
			require.NoError(t, err)
			tt.expected(cfg)
		})
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("GALLERY_BACKEND", "mongo")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("APP_RATE_LIMIT", "many")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte("GALLERY_DATA_DIR=/var/lib/gallery\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("GALLERY_DATA_DIR") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/gallery", cfg.Gallery.DataDir)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
