package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booksdesk-dev/booksdesk/internal/config"
	"github.com/booksdesk-dev/booksdesk/internal/ledger"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "USD"))

	for _, d := range []string{"accounts", "logs", "export"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.Load(filepath.Join(dir, "booksdesk.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Books.HomeCurrency)
	assert.Equal(t, 30, cfg.Session.TimeoutMinutes)
	assert.Equal(t, 3, cfg.Session.MaxLoginAttempts)
	assert.Equal(t, dir, cfg.Data.Dir)

	svc, err := ledger.Load(dir)
	require.NoError(t, err)
	assert.Len(t, svc.All(), len(ledger.DefaultChart()))
}
