package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecCache(t *testing.T) {
	t.Run("empty path never hits and never writes", func(t *testing.T) {
		c, err := loadSpecCache("")
		require.NoError(t, err)
		c.Record("Product", "abc")
		assert.False(t, c.UpToDate("Product", "abc"))
		require.NoError(t, c.Flush())
	})

	t.Run("missing file yields an empty cache", func(t *testing.T) {
		c, err := loadSpecCache(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.False(t, c.UpToDate("Product", "abc"))
	})

	t.Run("record, flush, reload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cache.yaml")
		c, err := loadSpecCache(path)
		require.NoError(t, err)
		c.Record("Product", "abc")
		c.Record("Order", "def")
		require.NoError(t, c.Flush())

		c, err = loadSpecCache(path)
		require.NoError(t, err)
		assert.True(t, c.UpToDate("Product", "abc"))
		assert.True(t, c.UpToDate("Order", "def"))
		assert.False(t, c.UpToDate("Product", "changed"))
		assert.False(t, c.UpToDate("Unknown", "abc"))
	})

	t.Run("clean cache does not rewrite the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cache.yaml")
		c, err := loadSpecCache(path)
		require.NoError(t, err)
		c.Record("Product", "abc")
		require.NoError(t, c.Flush())
		stat, err := os.Stat(path)
		require.NoError(t, err)

		// Recording the same hash again leaves the manifest untouched.
		c.Record("Product", "abc")
		require.NoError(t, c.Flush())
		again, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, stat.ModTime(), again.ModTime())
	})

	t.Run("malformed manifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cache.yaml")
		require.NoError(t, os.WriteFile(path, []byte("entries: [nope"), 0o644))
		_, err := loadSpecCache(path)
		assert.Error(t, err)
	})
}
