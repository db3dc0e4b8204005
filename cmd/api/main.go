package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"blog-backend/internal/config"
	"blog-backend/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "blog-api",
	Short: "Blog API - authors and posts with validated writes",
	Long: `Blog API serves authors and posts over JSON HTTP.

Every write passes through the field validators before it reaches storage.
Running without a subcommand is the same as "serve".`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	// .env is for local runs; deployments use real environment variables
	envErr := godotenv.Load()

	rootCmd.AddCommand(serveCmd, migrateCmd)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger.Init(cfg.App.Environment, cfg.Log.Level)
		if envErr != nil {
			log.Debug().Msg("no .env file found, using system environment variables")
		}
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		appConfig = cfg
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// appConfig is loaded once in PersistentPreRunE
var appConfig *config.Config
