// Package skill converts practiced minutes and effort ratings into experience
// points and levels, and merges practice entries into per-skill totals.
package skill

import (
	"fmt"
	"math"
)

// ID identifies a trainable skill.
type ID string

const (
	Serve     ID = "serve"
	Forehand  ID = "forehand"
	Backhand  ID = "backhand"
	Dink      ID = "dink"
	Volley    ID = "volley"
	ThirdShot ID = "thirdshot"
	Footwork  ID = "footwork"
	Strategy  ID = "strategy"
	Matches   ID = "matches"
)

// All lists every skill in display order.
func All() []ID {
	return []ID{Serve, Forehand, Backhand, Dink, Volley, ThirdShot, Footwork, Strategy, Matches}
}

// Valid reports whether id is a known skill.
func (id ID) Valid() bool {
	switch id {
	case Serve, Forehand, Backhand, Dink, Volley, ThirdShot, Footwork, Strategy, Matches:
		return true
	}
	return false
}

// Label returns the human-readable name for the skill.
func (id ID) Label() string {
	switch id {
	case Serve:
		return "Serving"
	case Forehand:
		return "Forehand"
	case Backhand:
		return "Backhand"
	case Dink:
		return "Dinking"
	case Volley:
		return "Volleying"
	case ThirdShot:
		return "3rd Shot"
	case Footwork:
		return "Footwork"
	case Strategy:
		return "Strategy"
	case Matches:
		return "Real Matches"
	}
	return string(id)
}

// BaseXPPerMinute is the XP earned per practiced minute at the baseline
// effort rating.
const BaseXPPerMinute = 1

// effortMultipliers scales XP by self-reported effort. Rating 3 is the 1.0x
// baseline; the table is strictly increasing in the rating.
var effortMultipliers = map[int]float64{
	1: 0.7,
	2: 0.85,
	3: 1.0,
	4: 1.2,
	5: 1.4,
}

// levelThresholds holds the cumulative XP required to reach each level.
// levelThresholds[i] is the XP needed for level i+1; reaching the last
// threshold caps the skill at the top level.
var levelThresholds = []int{0, 100, 250, 450, 700, 1000, 1350, 1750, 2200, 2700}

// MaxLevel is the highest reachable skill level.
var MaxLevel = len(levelThresholds)

// MinutesToXP converts practiced minutes and an effort rating of 1 to 5 into
// experience points, rounded to the nearest integer. Non-positive minutes and
// out-of-range ratings are rejected.
func MinutesToXP(minutes, rating int) (int, error) {
	if minutes <= 0 {
		return 0, fmt.Errorf("minutes must be positive, got %d", minutes)
	}
	multiplier, ok := effortMultipliers[rating]
	if !ok {
		return 0, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}
	return int(math.Round(float64(minutes) * BaseXPPerMinute * multiplier)), nil
}

// LevelProgress describes where a cumulative XP value sits in the level
// ladder.
type LevelProgress struct {
	// Level is the 1-indexed level for the XP value.
	Level int `json:"level"`
	// NextThreshold is the cumulative XP required for the next level. At the
	// top level there is no next threshold and Final is true.
	NextThreshold int `json:"nextThreshold"`
	// Progress is the fraction of the way from the current level's threshold
	// to the next, clamped to 1 at the top level.
	Progress float64 `json:"progress"`
	// Final reports that the top level has been reached.
	Final bool `json:"final"`
}

// XPToLevel maps cumulative XP onto the fixed level thresholds. It is
// monotonic non-decreasing in xp.
func XPToLevel(xp int) LevelProgress {
	if xp < 0 {
		xp = 0
	}
	level := 1
	for level < len(levelThresholds) && xp >= levelThresholds[level] {
		level++
	}

	prev := levelThresholds[level-1]
	if level == len(levelThresholds) {
		return LevelProgress{
			Level:         level,
			NextThreshold: prev,
			Progress:      1,
			Final:         true,
		}
	}
	next := levelThresholds[level]
	return LevelProgress{
		Level:         level,
		NextThreshold: next,
		Progress:      float64(xp-prev) / float64(next-prev),
	}
}
