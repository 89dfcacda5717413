package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 10, cfg.Pagination.DefaultSize)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("ENV", EnvProduction)
	t.Setenv("PORT", "9090")
	t.Setenv("API_PREFIX", "v2/")
	t.Setenv("DB_CONN_MAX_LIFETIME", "15m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("PAGINATION_DEFAULT_SIZE", "25")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/v2", cfg.APIPrefix)
	assert.Equal(t, 15*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 25, cfg.Pagination.DefaultSize)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("PAGINATION_DEFAULT_SIZE", "500")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("PAGINATION_DEFAULT_SIZE", "10")
	t.Setenv("PORT", "0")
	_, err = Load()
	require.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "students", SSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=students sslmode=require", cfg.DSN())
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Second, parseDuration("", time.Second))
	assert.Equal(t, time.Second, parseDuration("soon", time.Second))
	assert.Equal(t, 2*time.Minute, parseDuration("2m", time.Second))
}
