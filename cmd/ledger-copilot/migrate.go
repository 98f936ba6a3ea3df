package main

import (
	"errors"
	"fmt"
	"log/slog"

	"ledger-copilot/internal/config"
	"ledger-copilot/internal/database"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	var seed bool
	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withDatabase(func(cfg *config.Config, db *database.DB) error {
				if cfg.Database.Driver == database.DriverSQLite {
					slog.Info("sqlite database, applying schema with AutoMigrate")
					return db.AutoMigrate()
				}

				sqlDB, err := db.DB.DB()
				if err != nil {
					return fmt.Errorf("failed to get sql.DB: %w", err)
				}

				if seed {
					cfg.Database.SeedDatabase = true
				}
				runner := database.NewMigrationRunner(sqlDB, &cfg.Database)
				if err := runner.WaitForDatabase(); err != nil {
					return err
				}
				if err := runner.RunMigrations(); err != nil {
					return err
				}
				return runner.LoadSeeds()
			})
		},
	}
	up.Flags().BoolVar(&seed, "seed", false, "load seed files after migrating")

	status := &cobra.Command{
		Use:   "status",
		Short: "Print the current migration version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(func(cfg *config.Config, db *database.DB) error {
				if cfg.Database.Driver == database.DriverSQLite {
					fmt.Fprintln(cmd.OutOrStdout(), "sqlite databases are versioned by AutoMigrate")
					return nil
				}

				sqlDB, err := db.DB.DB()
				if err != nil {
					return fmt.Errorf("failed to get sql.DB: %w", err)
				}

				version, dirty, err := database.NewMigrationRunner(sqlDB, &cfg.Database).GetMigrationStatus()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
				return nil
			})
		},
	}

	cmd.AddCommand(up, status)
	return cmd
}

func withDatabase(fn func(*config.Config, *database.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.New(&cfg.Database, logger.Warn)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("failed to close database", "error", err)
		}
	}()

	return fn(cfg, db)
}
