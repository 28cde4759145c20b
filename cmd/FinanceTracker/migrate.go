package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sebuszqo/FinanceTracker/internal/config"
	database "github.com/sebuszqo/FinanceTracker/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the database schema",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.Up), string(database.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.Up
			if len(args) == 1 {
				direction = database.Direction(args[0])
			}

			cfg := config.FromViper(v)
			if cfg.Database.URL == "" {
				return errors.New("database.url (DB_CONNECTION_STRING) is required")
			}
			return database.RunMigrations(cfg.Database.URL, direction)
		},
	}
}
