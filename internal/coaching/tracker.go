package coaching

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

//go:generate mockgen -source=tracker.go -destination=../mocks/coaching/mock_store.go -package=mock_coaching Store

// Store persists one user's progress. Load reports whether a value was found;
// malformed stored data is treated as not found, only I/O failures are
// returned as errors.
type Store interface {
	Load(ctx context.Context) (UserProgress, bool, error)
	Save(ctx context.Context, progress UserProgress) error
}

// LevelState is the derived status of a level for a given progress value.
type LevelState string

const (
	LevelLocked             LevelState = "locked"
	LevelUnlockedIncomplete LevelState = "unlocked-incomplete"
	LevelUnlockedComplete   LevelState = "unlocked-complete"
)

// Tracker is the curriculum progress state machine. Level lock and completion
// states are always derived from the catalog and the persisted progress,
// never stored.
type Tracker struct {
	catalog *Catalog
	store   Store
	logger  *slog.Logger
}

// NewTracker creates a Tracker over a validated catalog and a progress store.
// A nil logger falls back to slog.Default().
func NewTracker(catalog *Catalog, store Store, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{catalog: catalog, store: store, logger: logger}
}

// Catalog returns the catalog the tracker operates on.
func (t *Tracker) Catalog() *Catalog {
	return t.catalog
}

// Progress loads the user's progress, falling back to the default when
// nothing is stored or the stored value references a level the catalog does
// not know. The fallback replaces the whole progress value, not just the bad
// field.
func (t *Tracker) Progress(ctx context.Context) (UserProgress, error) {
	progress, found, err := t.store.Load(ctx)
	if err != nil {
		return UserProgress{}, fmt.Errorf("store.Load() > %w", err)
	}
	if !found {
		return DefaultProgress(t.catalog), nil
	}
	if _, ok := t.catalog.LevelByID(progress.CurrentLevelID); !ok {
		t.logger.Warn("stored progress references an unknown level, resetting to default",
			slog.String("current_level_id", progress.CurrentLevelID),
		)
		return DefaultProgress(t.catalog), nil
	}
	if progress.WeeklyMinutesGoal <= 0 {
		progress.WeeklyMinutesGoal = DefaultWeeklyMinutesGoal
	}
	return progress, nil
}

// MarkModuleComplete records a module as completed and persists the result.
// Completing an already-completed module is a successful no-op. When the
// completed module's level is the current level and every module in it is now
// complete, the current level advances to the next order; completing the
// final level is terminal and leaves the current level unchanged.
func (t *Tracker) MarkModuleComplete(ctx context.Context, moduleID string) (UserProgress, error) {
	_, owning, ok := t.catalog.ModuleByID(moduleID)
	if !ok {
		return UserProgress{}, fmt.Errorf("unknown module %q", moduleID)
	}

	progress, err := t.Progress(ctx)
	if err != nil {
		return UserProgress{}, err
	}
	if progress.Completed(moduleID) {
		return progress, nil
	}

	progress = progress.withCompleted(moduleID)
	if err := t.store.Save(ctx, progress); err != nil {
		return UserProgress{}, fmt.Errorf("store.Save() > %w", err)
	}
	t.logger.Info("module completed",
		slog.String("module_id", moduleID),
		slog.String("level_id", owning.ID),
		slog.Int("level_percent", t.PercentCompleteForLevel(owning, progress)),
	)

	// Auto-advance is evaluated against the level that owns the completed
	// module, and only fires while that level is the current one. Finishing
	// the last module of an already-passed level must not move the current
	// level backwards.
	if owning.ID == progress.CurrentLevelID && t.levelComplete(owning, progress) {
		next, ok := t.catalog.LevelByOrder(owning.Order + 1)
		if !ok {
			t.logger.Info("final level complete", slog.String("level_id", owning.ID))
			return progress, nil
		}
		progress.CurrentLevelID = next.ID
		if err := t.store.Save(ctx, progress); err != nil {
			return UserProgress{}, fmt.Errorf("store.Save() > %w", err)
		}
		t.logger.Info("level advanced",
			slog.String("from_level_id", owning.ID),
			slog.String("to_level_id", next.ID),
		)
	}
	return progress, nil
}

// StateForLevel derives the lock and completion state of one level.
func (t *Tracker) StateForLevel(progress UserProgress, level Level) LevelState {
	if t.levelLocked(progress, level) {
		return LevelLocked
	}
	if t.levelComplete(level, progress) {
		return LevelUnlockedComplete
	}
	return LevelUnlockedIncomplete
}

// LevelStates derives the state of every catalog level.
func (t *Tracker) LevelStates(progress UserProgress) map[string]LevelState {
	states := make(map[string]LevelState, len(t.catalog.Levels))
	for _, level := range t.catalog.Levels {
		states[level.ID] = t.StateForLevel(progress, level)
	}
	return states
}

// levelLocked implements the lock rule: a level that is not locked by default
// is never locked, otherwise it is locked while its order is beyond the
// current level's order.
func (t *Tracker) levelLocked(progress UserProgress, level Level) bool {
	if !level.LockedByDefault {
		return false
	}
	current, ok := t.catalog.LevelByID(progress.CurrentLevelID)
	if !ok {
		return true
	}
	return level.Order > current.Order
}

// levelComplete reports whether every module of the level is completed.
func (t *Tracker) levelComplete(level Level, progress UserProgress) bool {
	for _, module := range level.Modules {
		if !progress.Completed(module.ID) {
			return false
		}
	}
	return true
}

// PercentCompleteForLevel returns the rounded completion percentage for a
// level. A level without modules reports 0.
func (t *Tracker) PercentCompleteForLevel(level Level, progress UserProgress) int {
	if len(level.Modules) == 0 {
		return 0
	}
	completed := 0
	for _, module := range level.Modules {
		if progress.Completed(module.ID) {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(level.Modules))))
}

// NextModuleID returns the first module after moduleID, in curriculum order,
// that has not been completed. It returns false when moduleID is unknown or
// every later module is already complete.
func (t *Tracker) NextModuleID(progress UserProgress, moduleID string) (string, bool) {
	modules := t.catalog.AllModules()
	index := -1
	for i, module := range modules {
		if module.ID == moduleID {
			index = i
			break
		}
	}
	if index == -1 {
		return "", false
	}
	for _, module := range modules[index+1:] {
		if !progress.Completed(module.ID) {
			return module.ID, true
		}
	}
	return "", false
}
