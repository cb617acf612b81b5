package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jobguard/internal/shared/config"
	"jobguard/internal/shared/kvstore"
	"jobguard/internal/shared/storage/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations for the Postgres state backend",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(cmd.Context(), cfg.DatabaseURL, opts)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer sqlDB.Close()

	if err := kvstore.RunMigrations(cmd.Context(), sqlDB); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	fmt.Fprintln(os.Stdout, "Migrations applied")
	return nil
}
