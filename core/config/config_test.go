package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("UPSTREAM_ACCESS_TOKEN", "token")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "https://api.loyverse.com/v1.0", cfg.Upstream.BaseURL)
	assert.Equal(t, 250, cfg.Upstream.PageSize)
	assert.Equal(t, "file", cfg.Cache.Backend)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 100, cfg.Sync.UpsertBatchSize)
	assert.Equal(t, 100, cfg.Sync.DeleteBatchSize)
	assert.Equal(t, 1000, cfg.Sync.ListPageSize)
	assert.Equal(t, 86400, cfg.Sync.StaleAfterSeconds)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_ACCESS_TOKEN", "token")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("SYNC_UPSERT_BATCH_SIZE", "25")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 25, cfg.Sync.UpsertBatchSize)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("UPSTREAM_PAGE_SIZE=50\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("UPSTREAM_PAGE_SIZE") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Upstream.PageSize)
}

func TestValidate_MissingAccessToken(t *testing.T) {
	t.Setenv("UPSTREAM_ACCESS_TOKEN", "")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccessToken")
}

func TestValidate_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("UPSTREAM_ACCESS_TOKEN", "token")
	t.Setenv("CACHE_BACKEND", "memcached")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, cfg.Validate())
}
