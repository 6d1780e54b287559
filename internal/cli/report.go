package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dinkwell/dinkwell/internal/coaching"
	"github.com/dinkwell/dinkwell/internal/recommend"
	"github.com/dinkwell/dinkwell/internal/report"
	"github.com/dinkwell/dinkwell/internal/session"
	"github.com/dinkwell/dinkwell/internal/skill"
	"github.com/dinkwell/dinkwell/internal/streak"
)

// suggestedFocusCount bounds the "suggested focus" section of the report.
const suggestedFocusCount = 3

// RunPracticeReport writes a markdown progress report and optionally converts
// it to PDF.
func RunPracticeReport(ctx context.Context, sessions session.Repository, skills skill.Repository, tracker *coaching.Tracker, userID, directory string, pdf bool, now time.Time, out io.Writer) error {
	list, err := sessions.FindByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("sessions.FindByUser() > %w", err)
	}
	totals, err := skills.Totals(ctx, userID)
	if err != nil {
		return fmt.Errorf("skills.Totals() > %w", err)
	}
	progress, err := tracker.Progress(ctx)
	if err != nil {
		return fmt.Errorf("tracker.Progress() > %w", err)
	}

	var levels []report.LevelSummary
	for _, level := range tracker.Catalog().Levels {
		levels = append(levels, report.LevelSummary{
			Title:           level.Title,
			State:           tracker.StateForLevel(progress, level),
			PercentComplete: tracker.PercentCompleteForLevel(level, progress),
		})
	}

	weakest := recommend.WeakestSkills(totals, skill.All())
	if len(weakest) > suggestedFocusCount {
		weakest = weakest[:suggestedFocusCount]
	}

	data := report.Data{
		UserID:      userID,
		GeneratedAt: now,
		Streak:      streak.Compute(list, now),
		Skills:      totals,
		Levels:      levels,
		Suggested:   weakest,
	}
	path, err := report.WriteMarkdown(data, directory)
	if err != nil {
		return fmt.Errorf("report.WriteMarkdown() > %w", err)
	}
	fmt.Fprintf(out, "Wrote %s\n", path)

	if pdf {
		pdfPath, err := report.ConvertMarkdownToPDF(path)
		if err != nil {
			return fmt.Errorf("report.ConvertMarkdownToPDF() > %w", err)
		}
		fmt.Fprintf(out, "Wrote %s\n", pdfPath)
	}
	return nil
}
