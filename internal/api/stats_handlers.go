package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/limbo/lifeflow/internal/calendar"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/pkg/httputil"
)

// GetDashboard godoc
//
// @Summary Home screen
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, today when omitted"
// @Success 200 {object} service.DashboardView
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /dashboard [get]
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "dashboard")
	if !ok {
		return
	}
	date, err := dateQuery(r, "date")
	if err != nil {
		writeServiceError(w, r, "dashboard", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	view, err := s.goalStreaksService.Dashboard(ctx, uid, date)
	if err != nil {
		writeServiceError(w, r, "dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

// GetInsights godoc
//
// @Summary Day, week, month and year stats
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, today when omitted"
// @Success 200 {object} stats.Insights
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /insights [get]
func (s *Server) GetInsights(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "insights")
	if !ok {
		return
	}
	date, err := dateQuery(r, "date")
	if err != nil {
		writeServiceError(w, r, "insights", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	insights, err := s.goalStreaksService.Insights(ctx, uid, date)
	if err != nil {
		writeServiceError(w, r, "insights", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, insights)
}

// GetActivity godoc
//
// @Summary Activity heatmap
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param timeframe query string false "day, week, month or year"
// @Param date query string false "YYYY-MM-DD, today when omitted"
// @Success 200 {object} service.ActivityHeatmap
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /activity [get]
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "activity")
	if !ok {
		return
	}
	raw := r.URL.Query().Get("timeframe")
	if raw == "" {
		raw = string(calendar.Week)
	}
	tf, err := calendar.ParseTimeframe(raw)
	if err != nil {
		writeServiceError(w, r, "activity", err)
		return
	}
	date, err := dateQuery(r, "date")
	if err != nil {
		writeServiceError(w, r, "activity", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	heatmap, err := s.habitLogsService.Activity(ctx, uid, tf, date)
	if err != nil {
		writeServiceError(w, r, "activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, heatmap)
}

// GetMonthlyCompletion godoc
//
// @Summary Monthly log completion
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, today when omitted"
// @Success 200 {object} stats.LogCompletion
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /stats/monthly [get]
func (s *Server) GetMonthlyCompletion(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "monthly completion")
	if !ok {
		return
	}
	date, err := dateQuery(r, "date")
	if err != nil {
		writeServiceError(w, r, "monthly completion", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	completion, err := s.habitLogsService.MonthlyCompletion(ctx, uid, date)
	if err != nil {
		writeServiceError(w, r, "monthly completion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, completion)
}

// GetDoVsDont godoc
//
// @Summary Weekly do vs don't
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, today when omitted"
// @Success 200 {object} map[string][]stats.DoVsDont
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /stats/do-vs-dont [get]
func (s *Server) GetDoVsDont(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "do vs don't")
	if !ok {
		return
	}
	date, err := dateQuery(r, "date")
	if err != nil {
		writeServiceError(w, r, "do vs don't", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	days, err := s.habitLogsService.DoVsDont(ctx, uid, date)
	if err != nil {
		writeServiceError(w, r, "do vs don't", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"days": days,
	})
}

// GetLongestStreaks godoc
//
// @Summary Top streaks by longest streak
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]entity.GoalStreak
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /stats/longest [get]
func (s *Server) GetLongestStreaks(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "longest streaks")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	list, err := s.goalStreaksService.Longest(ctx, uid)
	if err != nil {
		writeServiceError(w, r, "longest streaks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"goal_streaks": list,
	})
}

// GetRangeStats godoc
//
// @Summary Streak stats over a range
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param start query string true "YYYY-MM-DD"
// @Param end query string true "YYYY-MM-DD"
// @Success 200 {object} stats.RangeStats
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /stats/range [get]
func (s *Server) GetRangeStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "range stats")
	if !ok {
		return
	}
	start, err := dateQuery(r, "start")
	if err != nil {
		writeServiceError(w, r, "range stats", err)
		return
	}
	end, err := dateQuery(r, "end")
	if err != nil {
		writeServiceError(w, r, "range stats", err)
		return
	}
	if start == nil || end == nil {
		writeServiceError(w, r, "range stats", errors.Join(errorvalues.ErrInvalidRange, errors.New("start and end are required")))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	rs, err := s.goalStreaksService.RangeStats(ctx, uid, *start, *end)
	if err != nil {
		writeServiceError(w, r, "range stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, rs)
}

// GetProfile godoc
//
// @Summary Profile with level and next tier
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ProfileView
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /profile [get]
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "profile")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	view, err := s.progressionService.View(ctx, uid)
	if err != nil {
		writeServiceError(w, r, "profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

// GetAchievements godoc
//
// @Summary Achievements
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]entity.Achievement
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /achievements [get]
func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "achievements")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	list, err := s.progressionService.Achievements(ctx, uid)
	if err != nil {
		writeServiceError(w, r, "achievements", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"achievements": list,
	})
}
