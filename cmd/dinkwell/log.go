package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dinkwell/dinkwell/internal/cli"
	"github.com/dinkwell/dinkwell/internal/session"
	"github.com/dinkwell/dinkwell/internal/skill"
)

func newLogCommand() *cobra.Command {
	var (
		date     string
		focus    string
		issues   []string
		wentWell []string
		notes    []string
	)
	command := &cobra.Command{
		Use:   "log skill=minutes[:rating] ...",
		Short: "Log a practice session and credit XP per skill",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			entries, err := cli.ParsePracticeEntries(args)
			if err != nil {
				return err
			}
			sessionDate := time.Now()
			if date != "" {
				sessionDate, err = time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			input := cli.LogSessionInput{
				UserID:   userID,
				Date:     sessionDate,
				Focus:    session.Focus(focus),
				Issues:   issues,
				WentWell: wentWell,
				Notes:    notes,
				Entries:  entries,
			}
			return cli.RunLogSession(cmd.Context(), session.NewDBRepository(db), skill.NewDBRepository(db), input, cmd.OutOrStdout())
		},
	}
	command.Flags().StringVar(&date, "date", "", "session date as YYYY-MM-DD, defaults to today")
	command.Flags().StringVar(&focus, "focus", string(session.FocusDrills), fmt.Sprintf("session focus, one of %v", session.AllFocuses()))
	command.Flags().StringSliceVar(&issues, "issue", nil, "something that went wrong, repeatable")
	command.Flags().StringSliceVar(&wentWell, "went-well", nil, "something that went well, repeatable")
	command.Flags().StringSliceVar(&notes, "note", nil, "free-form note, repeatable")
	return command
}
