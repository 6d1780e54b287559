package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dinkwell/dinkwell/internal/api"
	"github.com/dinkwell/dinkwell/internal/cli"
	"github.com/dinkwell/dinkwell/internal/config"
	"github.com/dinkwell/dinkwell/internal/session"
)

func newRemoteCommand() *cobra.Command {
	remoteCommand := &cobra.Command{
		Use:   "remote",
		Short: "Query a dinkwell-server instead of the local database",
	}

	remoteCommand.AddCommand(newRemoteLogCommand())
	remoteCommand.AddCommand(newRemoteStreakCommand())
	remoteCommand.AddCommand(newRemoteSkillsCommand())
	remoteCommand.AddCommand(newRemoteProgressCommand())
	remoteCommand.AddCommand(newRemoteCompleteCommand())

	return remoteCommand
}

func newRemoteClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.Remote.BaseURL, cfg.Remote.Token, api.DefaultMaxRetryAttempts)
}

func newRemoteLogCommand() *cobra.Command {
	var focus string
	command := &cobra.Command{
		Use:   "log skill=minutes[:rating] ...",
		Short: "Log a practice session against a remote server",
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
			client := newRemoteClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			response, err := client.LogSession(cmd.Context(), api.LogSessionRequest{
				UserID: userID,
				Date:   time.Now(),
				Focus:  session.Focus(focus),
				Skills: entries,
			})
			if err != nil {
				return fmt.Errorf("client.LogSession() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged session #%d\n", response.SessionID)
			for _, entry := range entries {
				totals := response.Totals[entry.SkillID]
				fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %d XP (level %d)\n", entry.SkillID.Label(), totals.XP, totals.Level)
			}
			return nil
		},
	}
	command.Flags().StringVar(&focus, "focus", string(session.FocusDrills), "session focus")
	return command
}

func newRemoteStreakCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show streaks from a remote server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := newRemoteClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			response, err := client.Streak(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("client.Streak() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d day(s)\n", response.Streak.Current)
			fmt.Fprintf(cmd.OutOrStdout(), "Best streak:    %d day(s)\n", response.Streak.Best)
			return nil
		},
	}
}

func newRemoteSkillsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "Show skill levels from a remote server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := newRemoteClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			response, err := client.Skills(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("client.Skills() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-6s %-8s %s\n", "Skill", "Level", "XP", "Minutes")
			for _, status := range response.Skills {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-6d %-8d %d\n", status.Label, status.Ladder.Level, status.Totals.XP, status.Totals.Minutes)
			}
			return nil
		},
	}
}

func newRemoteProgressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show curriculum progress from a remote server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := newRemoteClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			response, err := client.Progress(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("client.Progress() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current level: %s\n", response.Progress.CurrentLevelID)
			for _, level := range response.Levels {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-20s %3d%%\n", level.Title, level.State, level.PercentComplete)
			}
			return nil
		},
	}
}

func newRemoteCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete module-id",
		Short: "Mark a module complete on a remote server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := newRemoteClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			response, err := client.CompleteModule(cmd.Context(), api.CompleteModuleRequest{
				UserID:   userID,
				ModuleID: args[0],
			})
			if err != nil {
				return fmt.Errorf("client.CompleteModule() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s, current level is now %s\n", args[0], response.Progress.CurrentLevelID)
			if response.NextModuleID != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Up next: %s\n", response.NextModuleID)
			}
			return nil
		},
	}
}
