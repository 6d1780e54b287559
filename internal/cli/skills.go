package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dinkwell/dinkwell/internal/skill"
)

// RunSkillsOverview prints the level ladder position of every skill.
func RunSkillsOverview(ctx context.Context, skills skill.Repository, userID string, out io.Writer) error {
	totals, err := skills.Totals(ctx, userID)
	if err != nil {
		return fmt.Errorf("skills.Totals() > %w", err)
	}

	fmt.Fprintln(out, "Skill Levels")
	fmt.Fprintln(out, "============")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-12s %-6s %-8s %-8s %s\n", "Skill", "Level", "XP", "Minutes", "Next level at")
	for _, id := range skill.All() {
		t := totals[id]
		ladder := skill.XPToLevel(t.XP)
		next := fmt.Sprintf("%d XP", ladder.NextThreshold)
		if ladder.Final {
			next = "max level"
		}
		line := fmt.Sprintf("%-12s %-6d %-8d %-8d %s", id.Label(), ladder.Level, t.XP, t.Minutes, next)
		if ladder.Final {
			color.New(color.FgGreen).Fprintln(out, line)
			continue
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
