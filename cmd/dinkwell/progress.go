package main

import (
	"github.com/spf13/cobra"

	"github.com/dinkwell/dinkwell/internal/cli"
)

func newProgressCommand() *cobra.Command {
	progressCommand := &cobra.Command{
		Use:   "progress",
		Short: "Coaching curriculum progress commands",
	}

	progressCommand.AddCommand(newProgressShowCommand())
	progressCommand.AddCommand(newProgressCompleteCommand())

	return progressCommand
}

func newProgressShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show every level with its lock state and completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			tracker, err := newTracker(cfg)
			if err != nil {
				return err
			}
			return cli.RunProgressOverview(cmd.Context(), tracker, cmd.OutOrStdout())
		},
	}
}

func newProgressCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete module-id",
		Short: "Mark a coaching module as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			tracker, err := newTracker(cfg)
			if err != nil {
				return err
			}
			return cli.RunCompleteModule(cmd.Context(), tracker, args[0], cmd.OutOrStdout())
		},
	}
}
