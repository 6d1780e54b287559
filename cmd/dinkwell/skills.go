package main

import (
	"github.com/spf13/cobra"

	"github.com/dinkwell/dinkwell/internal/cli"
	"github.com/dinkwell/dinkwell/internal/skill"
)

func newSkillsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "Show the XP and level of every skill",
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

			return cli.RunSkillsOverview(cmd.Context(), skill.NewDBRepository(db), userID, cmd.OutOrStdout())
		},
	}
}
