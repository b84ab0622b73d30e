package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://netbox.example.com", cfg.NetBox.URL)
	assert.Equal(t, ".token", cfg.NetBox.TokenFile)
	assert.Equal(t, "Token", cfg.NetBox.AuthScheme)
	assert.Equal(t, 30, cfg.NetBox.TimeoutSeconds)
	assert.Equal(t, 1000, cfg.NetBox.PageSize)
	assert.Zero(t, cfg.NetBox.RateLimit)
	assert.False(t, cfg.NetBox.InsecureSkipVerify)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, "sqlite", cfg.Journal.Driver)
	assert.Equal(t, "nbcli.db", cfg.Journal.Name)

	assert.Equal(t, "nbcli-exports", cfg.Storage.Bucket)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("NETBOX_URL", "https://nb.internal")
	t.Setenv("NETBOX_TOKEN", "abc123")
	t.Setenv("NETBOX_PAGE_SIZE", "250")
	t.Setenv("NETBOX_RATE_LIMIT", "2.5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JOURNAL_ENABLED", "true")
	t.Setenv("JOURNAL_DRIVER", "mysql")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://nb.internal", cfg.NetBox.URL)
	assert.Equal(t, "abc123", cfg.NetBox.Token)
	assert.Equal(t, 250, cfg.NetBox.PageSize)
	assert.Equal(t, 2.5, cfg.NetBox.RateLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "mysql", cfg.Journal.Driver)
}

func TestLoadConfig_FileAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "netbox:\n  url: https://from-file.example.com\n  auth_scheme: Bearer\nstorage:\n  bucket: archive\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_BUCKET=from-env\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STORAGE_BUCKET") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://from-file.example.com", cfg.NetBox.URL)
	assert.Equal(t, "Bearer", cfg.NetBox.AuthScheme)
	assert.Equal(t, "from-env", cfg.Storage.Bucket)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("netbox: [unterminated"), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
