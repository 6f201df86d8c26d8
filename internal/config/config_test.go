package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		c := config.Default()
		assert.Equal(t, ":8000", c.ListenAddr)
		assert.Equal(t, os.TempDir(), c.RestoredDir)
		assert.Equal(t, ".", c.FallbackDir)
		assert.Empty(t, c.AuditDB)
		assert.Equal(t, slog.LevelInfo, c.Level())
	})

	t.Run("Load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
listen_addr: ":9090"
restored_dir: /var/lib/imageauth/restored
audit_db: /var/lib/imageauth/audit.db
log_level: debug
`), 0o644))

		c, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":9090", c.ListenAddr)
		assert.Equal(t, "/var/lib/imageauth/restored", c.RestoredDir)
		assert.Equal(t, "/var/lib/imageauth/audit.db", c.AuditDB)
		assert.Equal(t, slog.LevelDebug, c.Level())
		// Keys absent from the file keep their defaults.
		assert.Equal(t, ".", c.FallbackDir)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("listen_addr: [:"), 0o644))
		_, err := config.Load(path)
		require.Error(t, err)
	})

	t.Run("Level", func(t *testing.T) {
		test := map[string]slog.Level{
			"debug":   slog.LevelDebug,
			"info":    slog.LevelInfo,
			"WARN":    slog.LevelWarn,
			"error":   slog.LevelError,
			"":        slog.LevelInfo,
			"unknown": slog.LevelInfo,
		}
		for in, want := range test {
			c := config.Config{LogLevel: in}
			assert.Equal(t, want, c.Level(), "level %q", in)
		}
	})
}
