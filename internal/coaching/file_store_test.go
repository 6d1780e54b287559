package coaching

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "progress.yml")
	store := NewFileStore(path)

	progress := UserProgress{
		CurrentLevelID:     "basics",
		CompletedModuleIDs: []string{"basics-grip"},
		WeeklyMinutesGoal:  120,
	}
	require.NoError(t, store.Save(context.Background(), progress))

	got, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, progress, got)
}

func TestFileStore_Load(t *testing.T) {
	t.Run("missing file means no progress", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "progress.yml"))

		_, found, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("unreadable yaml is discarded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "progress.yml")
		require.NoError(t, os.WriteFile(path, []byte("\tnot yaml"), 0644))
		store := NewFileStore(path)

		_, found, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.yml")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, UserProgress{CurrentLevelID: "basics", WeeklyMinutesGoal: 120}))
	require.NoError(t, store.Save(ctx, UserProgress{
		CurrentLevelID:     "intermediate",
		CompletedModuleIDs: []string{"basics-grip", "basics-dink"},
		WeeklyMinutesGoal:  150,
	}))

	got, found, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "intermediate", got.CurrentLevelID)
	assert.Equal(t, []string{"basics-grip", "basics-dink"}, got.CompletedModuleIDs)
	assert.Equal(t, 150, got.WeeklyMinutesGoal)
}
