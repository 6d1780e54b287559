// Package cli implements the dinkwell command behaviors.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/dinkwell/dinkwell/internal/session"
	"github.com/dinkwell/dinkwell/internal/streak"
)

// RunStreakReport prints the user's daily activity and streaks.
func RunStreakReport(ctx context.Context, sessions session.Repository, userID string, now time.Time, out io.Writer) error {
	list, err := sessions.FindByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("sessions.FindByUser() > %w", err)
	}

	state := streak.Compute(list, now)

	fmt.Fprintln(out, "Practice Streaks")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)
	if state.Current > 0 {
		color.New(color.FgGreen).Fprintf(out, "Current streak: %d day(s)\n", state.Current)
	} else {
		color.New(color.FgYellow).Fprintf(out, "Current streak: 0 days. Practice at least %d minutes today to start one.\n", streak.MinEffectiveMinutes)
	}
	fmt.Fprintf(out, "Best streak:    %d day(s)\n", state.Best)

	// Last 7 days of activity, most recent first.
	buckets := streak.DailyBuckets(list, now.Location())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-12s  %-8s  %s\n", "Date", "Minutes", "Counts")
	fmt.Fprintf(out, "%-12s  %-8s  %s\n", "----", "-------", "------")
	day := streak.DateOf(now, now.Location())
	for i := 0; i < 7; i++ {
		minutes := buckets[day]
		counts := "no"
		if minutes >= streak.MinEffectiveMinutes {
			counts = "yes"
		}
		fmt.Fprintf(out, "%04d-%02d-%02d    %-8d  %s\n", day.Year, day.Month, day.Day, minutes, counts)
		day = day.Previous()
	}
	return nil
}
