package main

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dinkwell/dinkwell/schemas"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema migrations",
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

			names, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
			if err != nil {
				return fmt.Errorf("fs.Glob(migrations) > %w", err)
			}
			sort.Strings(names)

			for _, name := range names {
				statements, err := fs.ReadFile(schemas.Migrations, name)
				if err != nil {
					return fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
				}
				if _, err := db.ExecContext(cmd.Context(), string(statements)); err != nil {
					return fmt.Errorf("db.ExecContext(%s) > %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", name)
			}
			return nil
		},
	}
}
