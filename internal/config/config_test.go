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
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PETSTORE_PORT", "9090")
	t.Setenv("PETSTORE_APP_ENV", "production")
	t.Setenv("PETSTORE_SEED_DATA", "false")
	t.Setenv("PETSTORE_READ_TIMEOUT", "30s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, ":9090", cfg.Addr())
}
