// Package api defines the JSON types served by dinkwell-server and a client
// for calling it from another device.
package api

import (
	"time"

	"github.com/dinkwell/dinkwell/internal/coaching"
	"github.com/dinkwell/dinkwell/internal/session"
	"github.com/dinkwell/dinkwell/internal/skill"
	"github.com/dinkwell/dinkwell/internal/streak"
)

// ErrorKind classifies a failed operation so a caller can decide whether a
// retry makes sense.
type ErrorKind string

const (
	ErrorKindInvalidInput ErrorKind = "invalid_input"
	ErrorKindNotFound     ErrorKind = "not_found"
	ErrorKindStoreIO      ErrorKind = "store_io"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// LogSessionRequest records one practice session together with its per-skill
// entries.
type LogSessionRequest struct {
	UserID   string                `json:"userId"`
	Date     time.Time             `json:"date"`
	Focus    session.Focus         `json:"focus"`
	Issues   []string              `json:"issues,omitempty"`
	WentWell []string              `json:"wentWell,omitempty"`
	Notes    []string              `json:"notes,omitempty"`
	Skills   []skill.PracticeEntry `json:"skills"`
}

// TotalMinutes sums the minutes across the request's skill entries.
func (r LogSessionRequest) TotalMinutes() int {
	total := 0
	for _, entry := range r.Skills {
		total += entry.Minutes
	}
	return total
}

type LogSessionResponse struct {
	SessionID int64                     `json:"sessionId"`
	Totals    map[skill.ID]skill.Totals `json:"totals"`
}

type StreakResponse struct {
	UserID string       `json:"userId"`
	Streak streak.State `json:"streak"`
}

// SkillStatus combines a skill's totals with its position on the level
// ladder.
type SkillStatus struct {
	SkillID skill.ID     `json:"skillId"`
	Label   string       `json:"label"`
	Totals  skill.Totals `json:"totals"`
	Ladder  skill.LevelProgress `json:"ladder"`
}

type SkillsResponse struct {
	UserID string        `json:"userId"`
	Skills []SkillStatus `json:"skills"`
}

// LevelStatus is the derived view of one curriculum level.
type LevelStatus struct {
	LevelID         string              `json:"levelId"`
	Title           string              `json:"title"`
	Order           int                 `json:"order"`
	State           coaching.LevelState `json:"state"`
	PercentComplete int                 `json:"percentComplete"`
}

type ProgressResponse struct {
	UserID   string                `json:"userId"`
	Progress coaching.UserProgress `json:"progress"`
	Levels   []LevelStatus         `json:"levels"`
}

type CompleteModuleRequest struct {
	UserID   string `json:"userId"`
	ModuleID string `json:"moduleId"`
}

type CompleteModuleResponse struct {
	Progress     coaching.UserProgress `json:"progress"`
	NextModuleID string                `json:"nextModuleId,omitempty"`
}
