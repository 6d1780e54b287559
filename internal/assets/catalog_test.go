package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinkwell/dinkwell/internal/coaching"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := coaching.ParseCatalog(DefaultCatalog())

	require.NoError(t, err)
	require.NotEmpty(t, catalog.Levels)
	assert.Equal(t, "getting-started", catalog.FirstLevel().ID)
	assert.False(t, catalog.FirstLevel().LockedByDefault)
}

func TestReadCatalog(t *testing.T) {
	t.Run("empty path returns the embedded catalog", func(t *testing.T) {
		data, err := ReadCatalog("")

		require.NoError(t, err)
		assert.Equal(t, DefaultCatalog(), data)
	})

	t.Run("missing file falls back to the embedded catalog", func(t *testing.T) {
		data, err := ReadCatalog(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, DefaultCatalog(), data)
	})

	t.Run("existing file wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yml")
		require.NoError(t, os.WriteFile(path, []byte("levels: []\n"), 0644))

		data, err := ReadCatalog(path)

		require.NoError(t, err)
		assert.Equal(t, "levels: []\n", string(data))
	})
}
