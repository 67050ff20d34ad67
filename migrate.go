package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func migrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, closeStore, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := s.Migrate(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Database schema is up to date."))

			return nil
		},
	}
}
