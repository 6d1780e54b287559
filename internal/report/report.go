// Package report renders a user's practice progress as a markdown document
// and optionally exports it to PDF.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dinkwell/dinkwell/internal/coaching"
	"github.com/dinkwell/dinkwell/internal/skill"
	"github.com/dinkwell/dinkwell/internal/streak"
)

// LevelSummary is one curriculum level's line in the report.
type LevelSummary struct {
	Title           string
	State           coaching.LevelState
	PercentComplete int
}

// Data collects everything the report shows.
type Data struct {
	UserID      string
	GeneratedAt time.Time
	Streak      streak.State
	Skills      map[skill.ID]skill.Totals
	Levels      []LevelSummary
	Suggested   []skill.ID
}

// Render produces the markdown report.
func Render(data Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Practice Report — %s\n\n", data.UserID)
	fmt.Fprintf(&b, "Generated %s\n\n", data.GeneratedAt.Format("2006-01-02"))

	b.WriteString("## Streak\n\n")
	fmt.Fprintf(&b, "- Current streak: %d day(s)\n", data.Streak.Current)
	fmt.Fprintf(&b, "- Best streak: %d day(s)\n\n", data.Streak.Best)

	b.WriteString("## Skills\n\n")
	if len(data.Skills) == 0 {
		b.WriteString("No practice logged yet.\n\n")
	} else {
		b.WriteString("| Skill | Level | XP | Minutes | Next level at |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, id := range skill.All() {
			t, ok := data.Skills[id]
			if !ok {
				continue
			}
			ladder := skill.XPToLevel(t.XP)
			next := fmt.Sprintf("%d XP", ladder.NextThreshold)
			if ladder.Final {
				next = "max level"
			}
			fmt.Fprintf(&b, "| %s | %d | %d | %d | %s |\n", id.Label(), t.Level, t.XP, t.Minutes, next)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Curriculum\n\n")
	for _, level := range data.Levels {
		fmt.Fprintf(&b, "- %s — %s (%d%%)\n", level.Title, level.State, level.PercentComplete)
	}
	b.WriteString("\n")

	if len(data.Suggested) > 0 {
		b.WriteString("## Suggested focus\n\n")
		for _, id := range data.Suggested {
			fmt.Fprintf(&b, "- %s\n", id.Label())
		}
		b.WriteString("\n")
	}

	return b.String()
}

// WriteMarkdown renders the report into directory and returns the file path.
func WriteMarkdown(data Data, directory string) (string, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}
	name := fmt.Sprintf("practice-report-%s.md", data.GeneratedAt.Format("2006-01-02"))
	path := filepath.Join(directory, name)
	if err := os.WriteFile(path, []byte(Render(data)), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}
