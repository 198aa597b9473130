package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "./catalog", cfg.CatalogDir)
	assert.Equal(t, "./drafts.db", cfg.StorePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SF86_CATALOG_DIR", "/data/catalog")
	t.Setenv("SF86_LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/data/catalog", cfg.CatalogDir)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", "json")
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = NewLogger("shout", "console")
	assert.Error(t, err)
}
