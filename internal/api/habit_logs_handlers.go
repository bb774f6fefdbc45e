package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/pkg/httputil"
	applog "github.com/limbo/lifeflow/pkg/logger"
)

// ToggleHabitLog godoc
//
// @Summary Toggle habit log of a date
// @Tags habit-logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ToggleLogRequest true "Log toggle"
// @Success 200 {object} entity.HabitLogEntry
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habit-logs [post]
func (s *Server) ToggleHabitLog(w http.ResponseWriter, r *http.Request) {
	logger := applog.FromContext(r.Context())
	uid, ok := s.requireUID(w, r, "toggle habit log")
	if !ok {
		return
	}
	var req service.ToggleLogRequest
	err := decodeBody(r, &req)
	if err != nil {
		logger.Error("toggle habit log error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	entry, err := s.habitLogsService.Toggle(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, r, "toggle habit log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("habit log toggled",
		slog.String("habit_id", entry.HabitID.String()),
		slog.Bool("completed", entry.Completed),
	)
}

// GetDayLogs godoc
//
// @Summary Logs of a date with completion
// @Tags habit-logs
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, today when omitted"
// @Success 200 {object} service.DayLogs
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habit-logs [get]
func (s *Server) GetDayLogs(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "get habit logs")
	if !ok {
		return
	}
	date, err := dateQuery(r, "date")
	if err != nil {
		writeServiceError(w, r, "get habit logs", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	logs, err := s.habitLogsService.DayLogs(ctx, uid, date)
	if err != nil {
		writeServiceError(w, r, "get habit logs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, logs)
}

// GetDailyCompletion godoc
//
// @Summary Daily task completion
// @Tags habit-logs
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, today when omitted"
// @Success 200 {object} stats.DailyCompletion
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habit-logs/completion [get]
func (s *Server) GetDailyCompletion(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "get daily completion")
	if !ok {
		return
	}
	date, err := dateQuery(r, "date")
	if err != nil {
		writeServiceError(w, r, "get daily completion", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	logs, err := s.habitLogsService.DayLogs(ctx, uid, date)
	if err != nil {
		writeServiceError(w, r, "get daily completion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, logs.Completion)
}

// GetWeekSummary godoc
//
// @Summary Logs bucketed by date
// @Tags habit-logs
// @Produce json
// @Security BearerAuth
// @Param start query string false "YYYY-MM-DD"
// @Param end query string false "YYYY-MM-DD"
// @Success 200 {object} service.WeekSummary
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habit-logs/week [get]
func (s *Server) GetWeekSummary(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "get week summary")
	if !ok {
		return
	}
	start, err := dateQuery(r, "start")
	if err != nil {
		writeServiceError(w, r, "get week summary", err)
		return
	}
	end, err := dateQuery(r, "end")
	if err != nil {
		writeServiceError(w, r, "get week summary", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	summary, err := s.habitLogsService.Week(ctx, uid, start, end)
	if err != nil {
		writeServiceError(w, r, "get week summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}
