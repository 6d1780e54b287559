// Package session provides practice session domain models and repository interfaces.
package session

import (
	"fmt"
	"time"
)

// Focus identifies the main theme of a practice session.
type Focus string

const (
	FocusDrills   Focus = "drills"
	FocusMatches  Focus = "matches"
	FocusServes   Focus = "serves"
	FocusDinks    Focus = "dinks"
	FocusFootwork Focus = "footwork"
	FocusStrategy Focus = "strategy"
)

// AllFocuses lists every valid focus tag in display order.
func AllFocuses() []Focus {
	return []Focus{FocusDrills, FocusMatches, FocusServes, FocusDinks, FocusFootwork, FocusStrategy}
}

// Valid reports whether f is a known focus tag.
func (f Focus) Valid() bool {
	switch f {
	case FocusDrills, FocusMatches, FocusServes, FocusDinks, FocusFootwork, FocusStrategy:
		return true
	}
	return false
}

// Session represents a single logged practice session. Sessions are immutable
// once created.
type Session struct {
	ID        int64      `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"userId"`
	Date      time.Time  `db:"date" json:"date"`
	Minutes   int        `db:"minutes" json:"minutes"`
	Focus     Focus      `db:"focus" json:"focus"`
	Issues    StringList `db:"issues" json:"issues"`
	WentWell  StringList `db:"went_well" json:"wentWell"`
	Notes     StringList `db:"notes" json:"notes"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}

// Validate checks the fields a caller controls before a session is persisted.
func (s Session) Validate() error {
	if s.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if s.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if s.Minutes < 0 {
		return fmt.Errorf("minutes must not be negative, got %d", s.Minutes)
	}
	if !s.Focus.Valid() {
		return fmt.Errorf("unknown focus tag %q", s.Focus)
	}
	return nil
}
