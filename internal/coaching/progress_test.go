package coaching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProgress(t *testing.T) {
	catalog, err := ParseCatalog([]byte(catalogYAML))
	require.NoError(t, err)

	progress := DefaultProgress(catalog)

	assert.Equal(t, "basics", progress.CurrentLevelID)
	assert.Empty(t, progress.CompletedModuleIDs)
	assert.Equal(t, DefaultWeeklyMinutesGoal, progress.WeeklyMinutesGoal)
}

func TestWithCompleted(t *testing.T) {
	progress := UserProgress{CompletedModuleIDs: []string{"a"}}

	next := progress.withCompleted("b")
	assert.Equal(t, []string{"a", "b"}, next.CompletedModuleIDs)
	// The original value is untouched.
	assert.Equal(t, []string{"a"}, progress.CompletedModuleIDs)

	// Adding a member again does not duplicate it.
	again := next.withCompleted("b")
	assert.Equal(t, []string{"a", "b"}, again.CompletedModuleIDs)
}

func TestCompleted(t *testing.T) {
	progress := UserProgress{CompletedModuleIDs: []string{"a", "b"}}

	assert.True(t, progress.Completed("a"))
	assert.False(t, progress.Completed("c"))
	assert.False(t, UserProgress{}.Completed("a"))
}
