package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinkwell/dinkwell/internal/coaching"
	mock_coaching "github.com/dinkwell/dinkwell/internal/mocks/coaching"
	"github.com/dinkwell/dinkwell/internal/skill"
	"github.com/dinkwell/dinkwell/internal/testutil"
	"go.uber.org/mock/gomock"
)

func TestWeakestSkills(t *testing.T) {
	totals := map[skill.ID]skill.Totals{
		skill.Serve:    {XP: 500},
		skill.Dink:     {XP: 20},
		skill.Backhand: {XP: 120},
	}

	got := WeakestSkills(totals, []skill.ID{skill.Serve, skill.Dink, skill.Backhand, skill.Footwork})

	// Footwork has no totals and counts as zero XP.
	assert.Equal(t, []skill.ID{skill.Footwork, skill.Dink, skill.Backhand, skill.Serve}, got)
}

func TestWeakestSkills_TiesKeepRequestedOrder(t *testing.T) {
	got := WeakestSkills(nil, []skill.ID{skill.Strategy, skill.Serve, skill.Dink})

	assert.Equal(t, []skill.ID{skill.Strategy, skill.Serve, skill.Dink}, got)
}

func TestNextModules(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := coaching.NewTracker(testutil.TestCatalog(t), mock_coaching.NewMockStore(ctrl), nil)

	t.Run("skips completed modules", func(t *testing.T) {
		progress := coaching.UserProgress{
			CurrentLevelID:     "basics",
			CompletedModuleIDs: []string{"basics-grip"},
		}

		got := NextModules(tracker, progress, 5)

		// The second level is still locked, so only basics modules qualify.
		require.Len(t, got, 1)
		assert.Equal(t, "basics-dink", got[0].ID)
	})

	t.Run("unlocked later levels contribute", func(t *testing.T) {
		progress := coaching.UserProgress{
			CurrentLevelID:     "intermediate",
			CompletedModuleIDs: []string{"basics-grip", "basics-dink"},
		}

		got := NextModules(tracker, progress, 5)

		require.Len(t, got, 1)
		assert.Equal(t, "inter-thirdshot", got[0].ID)
	})

	t.Run("limit bounds the result", func(t *testing.T) {
		progress := coaching.UserProgress{CurrentLevelID: "basics"}

		got := NextModules(tracker, progress, 1)

		require.Len(t, got, 1)
		assert.Equal(t, "basics-grip", got[0].ID)
	})
}
