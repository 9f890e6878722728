package config_test

import (
	"testing"

	"kitinventory/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "fischertechnik", cfg.Inventory.System)
	assert.Equal(t, "653", cfg.Catalog.KitCategory)
	assert.Equal(t, "/thumbnail/", cfg.Catalog.ThumbnailPath)
	assert.Equal(t, 30, cfg.Catalog.TimeoutSeconds)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 168, cfg.Cache.TTLHours)
	assert.False(t, cfg.Thumbnail.Enabled)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("INVENTORY_SYSTEM", "meccano")
	t.Setenv("CATALOG_BASE_URL", "http://catalog.example.test")
	t.Setenv("CACHE_ENABLED", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "meccano", cfg.Inventory.System)
	assert.Equal(t, "http://catalog.example.test", cfg.Catalog.BaseURL)
	assert.True(t, cfg.Cache.Enabled)
}
