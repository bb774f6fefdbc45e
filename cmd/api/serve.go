package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/lifeflow/internal/api"
	"github.com/limbo/lifeflow/internal/calendar"
	"github.com/limbo/lifeflow/internal/leveling"
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/pkg/cleanup"
	"github.com/limbo/lifeflow/pkg/config"
	jwtservice "github.com/limbo/lifeflow/pkg/jwt_service"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("address", "", "Address to listen on, overrides API_ADDRESS")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	defer cleanup.CleanUp()
	cfg := config.New()

	clock, err := calendar.NewClock(cfg.GetString("APP_TIMEZONE"))
	if err != nil {
		return err
	}
	ladder, err := loadLadder(cfg.GetString("REWARD_TIERS_FILE"))
	if err != nil {
		return err
	}

	pool := repository.Connect(dbConfig(cfg))
	usersRepo := repository.NewUsersRepoWithConn(pool)
	habitsRepo := repository.NewHabitsRepoWithConn(pool)
	habitLogsRepo := repository.NewHabitLogsRepoWithConn(pool)
	streaksRepo := repository.NewGoalStreaksRepoWithConn(pool)
	profilesRepo := repository.NewProfilesRepoWithConn(pool)
	achievementsRepo := repository.NewAchievementsRepoWithConn(pool)

	progression := service.NewProgressionService(profilesRepo, achievementsRepo, streaksRepo, ladder)
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo, progression),
		HabitsService:      service.NewHabitsService(habitsRepo, progression),
		HabitLogsService:   service.NewHabitLogsService(habitsRepo, habitLogsRepo, clock),
		GoalStreaksService: service.NewGoalStreaksService(streaksRepo, progression, clock),
		ProgressionService: progression,
		JwtService:         jwtservice.New(cfg.MustString("JWT_SECRET")).WithTTL(cfg.GetDuration("JWT_TTL")),
	})

	address, _ := cmd.Flags().GetString("address")
	if address == "" {
		address = cfg.GetString("API_ADDRESS")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	slog.Info("serving", slog.String("timezone", clock.Location().String()), slog.Int("reward_tiers", len(ladder)))
	return serv.Run(ctx, address)
}

// loadLadder falls back to the built-in tiers when no file is configured or found.
func loadLadder(path string) (leveling.Ladder, error) {
	if path == "" {
		return leveling.DefaultLadder, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Warn("reward tiers file not found, using defaults", slog.String("path", path))
		return leveling.DefaultLadder, nil
	}
	return leveling.LoadLadder(path)
}
