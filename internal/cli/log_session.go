package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/dinkwell/dinkwell/internal/session"
	"github.com/dinkwell/dinkwell/internal/skill"
)

// LogSessionInput carries one practice session and its per-skill effort.
type LogSessionInput struct {
	UserID   string
	Date     time.Time
	Focus    session.Focus
	Issues   []string
	WentWell []string
	Notes    []string
	Entries  []skill.PracticeEntry
}

func (in LogSessionInput) totalMinutes() int {
	total := 0
	for _, entry := range in.Entries {
		total += entry.Minutes
	}
	return total
}

// RunLogSession records a session and credits XP for each practiced skill.
func RunLogSession(ctx context.Context, sessions session.Repository, skills skill.Repository, in LogSessionInput, out io.Writer) error {
	record := &session.Session{
		UserID:   in.UserID,
		Date:     in.Date,
		Minutes:  in.totalMinutes(),
		Focus:    in.Focus,
		Issues:   in.Issues,
		WentWell: in.WentWell,
		Notes:    in.Notes,
	}
	if err := sessions.Create(ctx, record); err != nil {
		return fmt.Errorf("sessions.Create() > %w", err)
	}

	before, err := skills.Totals(ctx, in.UserID)
	if err != nil {
		return fmt.Errorf("skills.Totals() > %w", err)
	}
	after, err := skills.ApplyEntries(ctx, in.UserID, in.Entries)
	if err != nil {
		return fmt.Errorf("skills.ApplyEntries() > %w", err)
	}

	fmt.Fprintf(out, "Logged session #%d: %d minutes of %s\n", record.ID, record.Minutes, record.Focus)
	for _, entry := range in.Entries {
		beforeLevel := skill.XPToLevel(before[entry.SkillID].XP).Level
		afterLevel := skill.XPToLevel(after[entry.SkillID].XP).Level
		gained := after[entry.SkillID].XP - before[entry.SkillID].XP
		line := fmt.Sprintf("  %-10s +%d XP (level %d)", entry.SkillID.Label(), gained, afterLevel)
		if afterLevel > beforeLevel {
			color.New(color.FgGreen).Fprintf(out, "%s level up!\n", line)
			continue
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
