package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"blog-backend/internal/config"
	"blog-backend/internal/infrastructure/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Apply the SQL migrations embedded in the binary to the configured
PostgreSQL database. Already applied versions are skipped.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if appConfig.Storage.Driver != config.StoragePostgres {
			return errors.New("migrate requires STORAGE_DRIVER=postgres")
		}

		applied, err := database.Migrate(cmd.Context(), appConfig.Database.DSN())
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		log.Info().Int("applied", len(applied)).Strs("versions", applied).Msg("migrations complete")
		return nil
	},
}
