package main

import (
	"database/sql"
	"errors"
	"log/slog"

	_ "github.com/lib/pq"
	"github.com/limbo/lifeflow/pkg/config"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().String("sslmode", "disable", "sslmode of the migration connection")
}

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply database migrations",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"up", "down", "status"},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	sslmode, _ := cmd.Flags().GetString("sslmode")
	conn, err := sql.Open("postgres", dbConfig(cfg).ConnString()+"?sslmode="+sslmode)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	dir := cfg.GetString("MIGRATIONS_DIR")
	command := "up"
	if len(args) == 1 {
		command = args[0]
	}
	slog.Info("running migrations", slog.String("command", command), slog.String("dir", dir))
	switch command {
	case "up":
		return goose.Up(conn, dir)
	case "down":
		return goose.Down(conn, dir)
	case "status":
		return goose.Status(conn, dir)
	}
	return errors.New("unknown migrate command: " + command)
}
