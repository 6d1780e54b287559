package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dinkwell/dinkwell/internal/cli"
	"github.com/dinkwell/dinkwell/internal/session"
	"github.com/dinkwell/dinkwell/internal/skill"
)

func newReportCommand() *cobra.Command {
	var pdf bool
	command := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown practice report, optionally as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()
			tracker, err := newTracker(cfg)
			if err != nil {
				return err
			}

			return cli.RunPracticeReport(
				cmd.Context(),
				session.NewDBRepository(db),
				skill.NewDBRepository(db),
				tracker,
				userID,
				cfg.Outputs.ReportDirectory,
				pdf,
				time.Now(),
				cmd.OutOrStdout(),
			)
		},
	}
	command.Flags().BoolVar(&pdf, "pdf", false, "also convert the report to PDF")
	return command
}
