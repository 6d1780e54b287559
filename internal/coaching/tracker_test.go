package coaching_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dinkwell/dinkwell/internal/coaching"
	mock_coaching "github.com/dinkwell/dinkwell/internal/mocks/coaching"
	"github.com/dinkwell/dinkwell/internal/testutil"
)

func TestTracker_Progress(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(store *mock_coaching.MockStore)
		want      coaching.UserProgress
		wantErr   string
	}{
		{
			name: "no stored progress yields the default",
			setupMock: func(store *mock_coaching.MockStore) {
				store.EXPECT().Load(gomock.Any()).Return(coaching.UserProgress{}, false, nil)
			},
			want: coaching.UserProgress{
				CurrentLevelID:     "basics",
				CompletedModuleIDs: []string{},
				WeeklyMinutesGoal:  coaching.DefaultWeeklyMinutesGoal,
			},
		},
		{
			name: "stored progress is returned as is",
			setupMock: func(store *mock_coaching.MockStore) {
				store.EXPECT().Load(gomock.Any()).Return(coaching.UserProgress{
					CurrentLevelID:     "intermediate",
					CompletedModuleIDs: []string{"basics-grip", "basics-dink"},
					WeeklyMinutesGoal:  200,
				}, true, nil)
			},
			want: coaching.UserProgress{
				CurrentLevelID:     "intermediate",
				CompletedModuleIDs: []string{"basics-grip", "basics-dink"},
				WeeklyMinutesGoal:  200,
			},
		},
		{
			name: "unknown current level replaces the whole value with the default",
			setupMock: func(store *mock_coaching.MockStore) {
				store.EXPECT().Load(gomock.Any()).Return(coaching.UserProgress{
					CurrentLevelID:     "renamed-away",
					CompletedModuleIDs: []string{"basics-grip"},
					WeeklyMinutesGoal:  200,
				}, true, nil)
			},
			want: coaching.UserProgress{
				CurrentLevelID:     "basics",
				CompletedModuleIDs: []string{},
				WeeklyMinutesGoal:  coaching.DefaultWeeklyMinutesGoal,
			},
		},
		{
			name: "missing weekly goal falls back to the default",
			setupMock: func(store *mock_coaching.MockStore) {
				store.EXPECT().Load(gomock.Any()).Return(coaching.UserProgress{
					CurrentLevelID:     "basics",
					CompletedModuleIDs: []string{},
				}, true, nil)
			},
			want: coaching.UserProgress{
				CurrentLevelID:     "basics",
				CompletedModuleIDs: []string{},
				WeeklyMinutesGoal:  coaching.DefaultWeeklyMinutesGoal,
			},
		},
		{
			name: "store errors surface",
			setupMock: func(store *mock_coaching.MockStore) {
				store.EXPECT().Load(gomock.Any()).Return(coaching.UserProgress{}, false, fmt.Errorf("disk on fire"))
			},
			wantErr: "disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mock_coaching.NewMockStore(ctrl)
			tt.setupMock(store)

			tracker := coaching.NewTracker(testutil.TestCatalog(t), store, nil)
			got, err := tracker.Progress(context.Background())
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTracker_MarkModuleComplete(t *testing.T) {
	t.Run("records the module", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_coaching.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(coaching.UserProgress{}, false, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, progress coaching.UserProgress) error {
				assert.Equal(t, []string{"basics-grip"}, progress.CompletedModuleIDs)
				assert.Equal(t, "basics", progress.CurrentLevelID)
				return nil
			})

		tracker := coaching.NewTracker(testutil.TestCatalog(t), store, nil)
		progress, err := tracker.MarkModuleComplete(context.Background(), "basics-grip")

		require.NoError(t, err)
		assert.True(t, progress.Completed("basics-grip"))
		assert.Equal(t, "basics", progress.CurrentLevelID)
	})

	t.Run("already completed module is a no-op without a save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_coaching.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(coaching.UserProgress{
			CurrentLevelID:     "basics",
			CompletedModuleIDs: []string{"basics-grip"},
			WeeklyMinutesGoal:  coaching.DefaultWeeklyMinutesGoal,
		}, true, nil)

		tracker := coaching.NewTracker(testutil.TestCatalog(t), store, nil)
		progress, err := tracker.MarkModuleComplete(context.Background(), "basics-grip")

		require.NoError(t, err)
		assert.Equal(t, []string{"basics-grip"}, progress.CompletedModuleIDs)
	})

	t.Run("unknown module is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_coaching.NewMockStore(ctrl)

		tracker := coaching.NewTracker(testutil.TestCatalog(t), store, nil)
		_, err := tracker.MarkModuleComplete(context.Background(), "made-up")

		assert.ErrorContains(t, err, `unknown module "made-up"`)
	})

	t.Run("finishing the current level advances it exactly once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_coaching.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(coaching.UserProgress{
			CurrentLevelID:     "basics",
			CompletedModuleIDs: []string{"basics-grip"},
			WeeklyMinutesGoal:  coaching.DefaultWeeklyMinutesGoal,
		}, true, nil)
		gomock.InOrder(
			store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, progress coaching.UserProgress) error {
					assert.Equal(t, "basics", progress.CurrentLevelID)
					return nil
				}),
			store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, progress coaching.UserProgress) error {
					assert.Equal(t, "intermediate", progress.CurrentLevelID)
					return nil
				}),
		)

		tracker := coaching.NewTracker(testutil.TestCatalog(t), store, nil)
		progress, err := tracker.MarkModuleComplete(context.Background(), "basics-dink")

		require.NoError(t, err)
		assert.Equal(t, "intermediate", progress.CurrentLevelID)
	})

	t.Run("finishing a past level does not move the current level", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_coaching.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(coaching.UserProgress{
			CurrentLevelID:     "intermediate",
			CompletedModuleIDs: []string{"basics-grip"},
			WeeklyMinutesGoal:  coaching.DefaultWeeklyMinutesGoal,
		}, true, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		tracker := coaching.NewTracker(testutil.TestCatalog(t), store, nil)
		progress, err := tracker.MarkModuleComplete(context.Background(), "basics-dink")

		require.NoError(t, err)
		assert.Equal(t, "intermediate", progress.CurrentLevelID)
	})

	t.Run("completing the final level is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_coaching.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(coaching.UserProgress{
			CurrentLevelID:     "intermediate",
			CompletedModuleIDs: []string{"basics-grip", "basics-dink"},
			WeeklyMinutesGoal:  coaching.DefaultWeeklyMinutesGoal,
		}, true, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		tracker := coaching.NewTracker(testutil.TestCatalog(t), store, nil)
		progress, err := tracker.MarkModuleComplete(context.Background(), "inter-thirdshot")

		require.NoError(t, err)
		assert.Equal(t, "intermediate", progress.CurrentLevelID)
		assert.True(t, progress.Completed("inter-thirdshot"))
	})

	t.Run("save failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_coaching.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(coaching.UserProgress{}, false, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk full"))

		tracker := coaching.NewTracker(testutil.TestCatalog(t), store, nil)
		_, err := tracker.MarkModuleComplete(context.Background(), "basics-grip")

		assert.ErrorContains(t, err, "disk full")
	})
}

func TestTracker_LevelStates(t *testing.T) {
	tests := []struct {
		name     string
		progress coaching.UserProgress
		want     map[string]coaching.LevelState
	}{
		{
			name: "fresh user",
			progress: coaching.UserProgress{
				CurrentLevelID:     "basics",
				CompletedModuleIDs: []string{},
			},
			want: map[string]coaching.LevelState{
				"basics":       coaching.LevelUnlockedIncomplete,
				"intermediate": coaching.LevelLocked,
			},
		},
		{
			name: "first level done and advanced",
			progress: coaching.UserProgress{
				CurrentLevelID:     "intermediate",
				CompletedModuleIDs: []string{"basics-grip", "basics-dink"},
			},
			want: map[string]coaching.LevelState{
				"basics":       coaching.LevelUnlockedComplete,
				"intermediate": coaching.LevelUnlockedIncomplete,
			},
		},
		{
			name: "everything complete",
			progress: coaching.UserProgress{
				CurrentLevelID:     "intermediate",
				CompletedModuleIDs: []string{"basics-grip", "basics-dink", "inter-thirdshot"},
			},
			want: map[string]coaching.LevelState{
				"basics":       coaching.LevelUnlockedComplete,
				"intermediate": coaching.LevelUnlockedComplete,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tracker := coaching.NewTracker(testutil.TestCatalog(t), mock_coaching.NewMockStore(ctrl), nil)

			assert.Equal(t, tt.want, tracker.LevelStates(tt.progress))
		})
	}
}

func TestTracker_PercentCompleteForLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := testutil.TestCatalog(t)
	tracker := coaching.NewTracker(catalog, mock_coaching.NewMockStore(ctrl), nil)

	basics, ok := catalog.LevelByID("basics")
	require.True(t, ok)

	assert.Equal(t, 0, tracker.PercentCompleteForLevel(basics, coaching.UserProgress{}))
	assert.Equal(t, 50, tracker.PercentCompleteForLevel(basics, coaching.UserProgress{
		CompletedModuleIDs: []string{"basics-grip"},
	}))
	assert.Equal(t, 100, tracker.PercentCompleteForLevel(basics, coaching.UserProgress{
		CompletedModuleIDs: []string{"basics-grip", "basics-dink"},
	}))

	// A level without modules reports 0, not a division error.
	assert.Equal(t, 0, tracker.PercentCompleteForLevel(coaching.Level{ID: "empty"}, coaching.UserProgress{}))
}

func TestTracker_NextModuleID(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := coaching.NewTracker(testutil.TestCatalog(t), mock_coaching.NewMockStore(ctrl), nil)

	next, ok := tracker.NextModuleID(coaching.UserProgress{}, "basics-grip")
	require.True(t, ok)
	assert.Equal(t, "basics-dink", next)

	// Completed modules are skipped.
	next, ok = tracker.NextModuleID(coaching.UserProgress{
		CompletedModuleIDs: []string{"basics-dink"},
	}, "basics-grip")
	require.True(t, ok)
	assert.Equal(t, "inter-thirdshot", next)

	// Nothing after the last module.
	_, ok = tracker.NextModuleID(coaching.UserProgress{}, "inter-thirdshot")
	assert.False(t, ok)

	// Unknown module id.
	_, ok = tracker.NextModuleID(coaching.UserProgress{}, "made-up")
	assert.False(t, ok)
}
