package coaching

// DefaultWeeklyMinutesGoal is assigned when progress is created on first
// access.
const DefaultWeeklyMinutesGoal = 120

// UserProgress is the persisted curriculum state for one user. The completed
// module ids form a set: membership is what matters, order does not, and ids
// are never stored twice.
type UserProgress struct {
	CurrentLevelID     string   `yaml:"current_level_id" json:"currentLevelId"`
	CompletedModuleIDs []string `yaml:"completed_module_ids" json:"completedModuleIds"`
	WeeklyMinutesGoal  int      `yaml:"weekly_minutes_goal" json:"weeklyMinutesGoal"`
}

// DefaultProgress returns the progress assigned to a user who has none:
// positioned at the lowest-order level with nothing completed.
func DefaultProgress(catalog *Catalog) UserProgress {
	return UserProgress{
		CurrentLevelID:     catalog.FirstLevel().ID,
		CompletedModuleIDs: []string{},
		WeeklyMinutesGoal:  DefaultWeeklyMinutesGoal,
	}
}

// Completed reports whether the module id is in the completed set.
func (p UserProgress) Completed(moduleID string) bool {
	for _, id := range p.CompletedModuleIDs {
		if id == moduleID {
			return true
		}
	}
	return false
}

// withCompleted returns a copy of the progress with moduleID added to the
// completed set. Adding an already-present id returns an unchanged copy.
func (p UserProgress) withCompleted(moduleID string) UserProgress {
	ids := make([]string, 0, len(p.CompletedModuleIDs)+1)
	ids = append(ids, p.CompletedModuleIDs...)
	if !p.Completed(moduleID) {
		ids = append(ids, moduleID)
	}
	p.CompletedModuleIDs = ids
	return p
}
