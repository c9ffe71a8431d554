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

	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "https://api.example.com", cfg.Lookup.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ACCOUNTD_HOST", "127.0.0.1")
	t.Setenv("ACCOUNTD_PORT", "9090")
	t.Setenv("ACCOUNTD_LOOKUP_URL", "http://lookup.internal")
	t.Setenv("ACCOUNTD_LOOKUP_TIMEOUT", "2s")
	t.Setenv("ACCOUNTD_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, "http://lookup.internal", cfg.Lookup.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}
