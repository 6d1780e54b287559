package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dinkwell/dinkwell/internal/coaching"
)

func newCatalogCommand() *cobra.Command {
	catalogCommand := &cobra.Command{
		Use:   "catalog",
		Short: "Coaching catalog commands",
	}

	catalogCommand.AddCommand(newCatalogValidateCommand())

	return catalogCommand
}

func newCatalogValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate file",
		Short: "Validate a coaching catalog YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}
			catalog, err := coaching.ParseCatalog(data)
			if err != nil {
				return err
			}
			modules := 0
			for _, level := range catalog.Levels {
				modules += len(level.Modules)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d level(s), %d module(s)\n", len(catalog.Levels), modules)
			return nil
		},
	}
}
