package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/pkg/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	habitService       service.HabitsServiceI
	habitLogsService   service.HabitLogsServiceI
	goalStreaksService service.GoalStreaksServiceI
	progressionService service.ProgressionServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	HabitsService      service.HabitsServiceI
	HabitLogsService   service.HabitLogsServiceI
	GoalStreaksService service.GoalStreaksServiceI
	ProgressionService service.ProgressionServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions == nil {
		log.Fatal("on api server provided nil services list")
	}
	s := &Server{
		userService:        servicesOptions.UserService,
		habitService:       servicesOptions.HabitsService,
		habitLogsService:   servicesOptions.HabitLogsService,
		goalStreaksService: servicesOptions.GoalStreaksService,
		progressionService: servicesOptions.ProgressionService,
		jwtService:         servicesOptions.JwtService,
	}
	s.mx = s.routes()
	return s
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.SettingUpLoggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(s.MetricsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Delete("/auth/account", s.DeleteAccount)

			r.Route("/habits", func(r chi.Router) {
				r.Get("/", s.GetHabits)
				r.Post("/", s.CreateHabit)
				r.Get("/{id}", s.GetHabit)
				r.Delete("/{id}", s.DeleteHabit)
			})
			r.Route("/habit-logs", func(r chi.Router) {
				r.Get("/", s.GetDayLogs)
				r.Post("/", s.ToggleHabitLog)
				r.Get("/week", s.GetWeekSummary)
				r.Get("/completion", s.GetDailyCompletion)
			})
			r.Route("/goal-streaks", func(r chi.Router) {
				r.Get("/", s.GetGoalStreaks)
				r.Post("/", s.CreateGoalStreak)
				r.Patch("/{id}", s.CheckinGoalStreak)
				r.Put("/{id}", s.UpdateGoalStreak)
				r.Delete("/{id}", s.DeleteGoalStreak)
			})
			r.Get("/dashboard", s.GetDashboard)
			r.Get("/insights", s.GetInsights)
			r.Get("/activity", s.GetActivity)
			r.Route("/stats", func(r chi.Router) {
				r.Get("/monthly", s.GetMonthlyCompletion)
				r.Get("/do-vs-dont", s.GetDoVsDont)
				r.Get("/longest", s.GetLongestStreaks)
				r.Get("/range", s.GetRangeStats)
			})
			r.Get("/profile", s.GetProfile)
			r.Get("/achievements", s.GetAchievements)
		})
	})
	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
