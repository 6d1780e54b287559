package skill

import "fmt"

// Totals accumulates a user's lifetime practice for one skill. Values only
// ever increase.
type Totals struct {
	XP      int `db:"xp" json:"xp" yaml:"xp"`
	Minutes int `db:"minutes" json:"minutes" yaml:"minutes"`
	Level   int `db:"level" json:"level" yaml:"level"`
}

// PracticeEntry is one skill's share of a logged practice session.
type PracticeEntry struct {
	SkillID ID  `json:"skillId"`
	Minutes int `json:"minutes"`
	Rating  int `json:"rating"`
}

// Validate rejects entries that would produce undefined XP.
func (e PracticeEntry) Validate() error {
	if !e.SkillID.Valid() {
		return fmt.Errorf("unknown skill %q", e.SkillID)
	}
	if e.Minutes <= 0 {
		return fmt.Errorf("minutes must be positive, got %d", e.Minutes)
	}
	if e.Rating < 1 || e.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", e.Rating)
	}
	return nil
}

// ApplyPracticeEntry merges one practice entry into a totals map and returns
// the merged copy. The input map is not modified and skills other than the
// entry's are carried over untouched. XP and minutes are additive, and the
// level is recomputed from the new cumulative XP, so no field ever decreases.
func ApplyPracticeEntry(totals map[ID]Totals, entry PracticeEntry) (map[ID]Totals, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	earned, err := MinutesToXP(entry.Minutes, entry.Rating)
	if err != nil {
		return nil, err
	}

	merged := make(map[ID]Totals, len(totals)+1)
	for id, t := range totals {
		merged[id] = t
	}

	current := merged[entry.SkillID]
	current.XP += earned
	current.Minutes += entry.Minutes
	current.Level = XPToLevel(current.XP).Level
	merged[entry.SkillID] = current
	return merged, nil
}

// ApplyPracticeEntries merges a batch of entries in order. The batch fails as
// a whole on the first invalid entry.
func ApplyPracticeEntries(totals map[ID]Totals, entries []PracticeEntry) (map[ID]Totals, error) {
	merged := totals
	for i, entry := range entries {
		next, err := ApplyPracticeEntry(merged, entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		merged = next
	}
	if merged == nil {
		merged = map[ID]Totals{}
	}
	return merged, nil
}
