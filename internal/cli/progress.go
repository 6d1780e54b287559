package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dinkwell/dinkwell/internal/coaching"
)

// RunProgressOverview prints every curriculum level with its state and
// completion percentage.
func RunProgressOverview(ctx context.Context, tracker *coaching.Tracker, out io.Writer) error {
	progress, err := tracker.Progress(ctx)
	if err != nil {
		return fmt.Errorf("tracker.Progress() > %w", err)
	}

	fmt.Fprintln(out, "Coaching Progress")
	fmt.Fprintln(out, "=================")
	fmt.Fprintln(out)
	for _, level := range tracker.Catalog().Levels {
		state := tracker.StateForLevel(progress, level)
		percent := tracker.PercentCompleteForLevel(level, progress)
		marker := " "
		if level.ID == progress.CurrentLevelID {
			marker = ">"
		}
		line := fmt.Sprintf("%s %-20s %-20s %3d%%", marker, level.Title, state, percent)
		switch state {
		case coaching.LevelUnlockedComplete:
			color.New(color.FgGreen).Fprintln(out, line)
		case coaching.LevelLocked:
			color.New(color.FgHiBlack).Fprintln(out, line)
		default:
			fmt.Fprintln(out, line)
		}
		for _, module := range level.Modules {
			check := "[ ]"
			if progress.Completed(module.ID) {
				check = "[x]"
			}
			fmt.Fprintf(out, "    %s %s (%s, %dm)\n", check, module.Title, module.Type, module.EstMinutes)
		}
	}
	return nil
}

// RunCompleteModule marks one module done and reports what to work on next.
func RunCompleteModule(ctx context.Context, tracker *coaching.Tracker, moduleID string, out io.Writer) error {
	progress, err := tracker.MarkModuleComplete(ctx, moduleID)
	if err != nil {
		return fmt.Errorf("tracker.MarkModuleComplete() > %w", err)
	}

	module, owning, _ := tracker.Catalog().ModuleByID(moduleID)
	color.New(color.FgGreen).Fprintf(out, "Completed %s\n", module.Title)
	fmt.Fprintf(out, "%s: %d%% complete\n", owning.Title, tracker.PercentCompleteForLevel(owning, progress))
	if next, ok := tracker.NextModuleID(progress, moduleID); ok {
		nextModule, _, _ := tracker.Catalog().ModuleByID(next)
		fmt.Fprintf(out, "Up next: %s\n", nextModule.Title)
	}
	return nil
}
