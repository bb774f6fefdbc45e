// @title Habit-tracker API
// @description API for goal streaks, habit logs and progression "Lifeflow"
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"
	"os"

	_ "github.com/limbo/lifeflow/docs"
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/pkg/config"
	"github.com/limbo/lifeflow/pkg/logger"
	"github.com/spf13/cobra"
)

func init() {
	service.InitValidator()
}

var rootCmd = &cobra.Command{
	Use:   "lifeflow",
	Short: "Goal streaks and habit tracker API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()
		return logger.Init(logger.Config{
			Level: cfg.GetString("LOG_LEVEL"),
			File:  cfg.GetString("LOG_FILE"),
		})
	},
	// Bare invocation serves the API
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println("lifeflow error: " + err.Error())
		os.Exit(1)
	}
}

func dbConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
}
