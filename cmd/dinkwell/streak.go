package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dinkwell/dinkwell/internal/cli"
	"github.com/dinkwell/dinkwell/internal/session"
)

func newStreakCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show daily practice streaks",
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

			return cli.RunStreakReport(cmd.Context(), session.NewDBRepository(db), userID, time.Now(), cmd.OutOrStdout())
		},
	}
}
