package main

import (
	"log/slog"

	"ledger-copilot/internal/database"
	"ledger-copilot/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Initialize(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					slog.Warn("failed to close database", "error", err)
				}
			}()

			srv := server.New(cfg, db.DB, server.Options{
				Version: version,
				Logger:  slog.Default(),
			})
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().String("host", "", "listen host (SERVER_HOST)")
	cmd.Flags().String("port", "", "listen port (SERVER_PORT)")
	cmd.Flags().Bool("auto-migrate", false, "apply migrations before serving (AUTO_MIGRATE)")
	_ = viper.BindPFlag("SERVER_HOST", cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("SERVER_PORT", cmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("AUTO_MIGRATE", cmd.Flags().Lookup("auto-migrate"))

	return cmd
}
