// Package recommend suggests what to practice next from a user's skill
// totals and curriculum progress.
package recommend

import (
	"sort"

	"github.com/dinkwell/dinkwell/internal/coaching"
	"github.com/dinkwell/dinkwell/internal/skill"
)

// WeakestSkills orders the requested skills by ascending XP, so the least
// practiced skill comes first. Skills without totals count as zero XP. Ties
// keep the requested order.
func WeakestSkills(totals map[skill.ID]skill.Totals, requested []skill.ID) []skill.ID {
	ordered := make([]skill.ID, len(requested))
	copy(ordered, requested)
	sort.SliceStable(ordered, func(i, j int) bool {
		return totals[ordered[i]].XP < totals[ordered[j]].XP
	})
	return ordered
}

// NextModules returns up to limit uncompleted modules from unlocked levels,
// in curriculum order. It is what "up next this week" surfaces show.
func NextModules(tracker *coaching.Tracker, progress coaching.UserProgress, limit int) []coaching.Module {
	var modules []coaching.Module
	for _, level := range tracker.Catalog().Levels {
		if tracker.StateForLevel(progress, level) == coaching.LevelLocked {
			continue
		}
		for _, module := range level.Modules {
			if progress.Completed(module.ID) {
				continue
			}
			modules = append(modules, module)
			if len(modules) == limit {
				return modules
			}
		}
	}
	return modules
}
