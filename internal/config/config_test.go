package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 30, cfg.Session.TimeoutMinutes)
	assert.Equal(t, 3, cfg.Session.MaxLoginAttempts)
	assert.Equal(t, "MUR", cfg.Books.HomeCurrency)
	assert.Equal(t, 30*time.Minute, cfg.IdleTimeout())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "booksdesk.yaml")

	cfg := Default()
	cfg.Session.TimeoutMinutes = 45
	cfg.Books.HomeCurrency = "USD"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 45, loaded.Session.TimeoutMinutes)
	assert.Equal(t, 3, loaded.Session.MaxLoginAttempts)
	assert.Equal(t, "USD", loaded.Books.HomeCurrency)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFromEnvOverlay(t *testing.T) {
	t.Setenv("BOOKSDESK_SESSION_TIMEOUT_MINUTES", "5")
	t.Setenv("BOOKSDESK_HOME_CURRENCY", "EUR")

	cfg := Default()
	require.NoError(t, FromEnv(cfg))

	assert.Equal(t, 5, cfg.Session.TimeoutMinutes)
	assert.Equal(t, "EUR", cfg.Books.HomeCurrency)
	assert.Equal(t, 3, cfg.Session.MaxLoginAttempts, "untouched keys keep their values")
}
