package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/internal/streak"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/limbo/lifeflow/pkg/httputil"
	applog "github.com/limbo/lifeflow/pkg/logger"
)

// CheckinRequest either moves the streak by one (Action) or sets it directly (CurrentStreak).
type CheckinRequest struct {
	Action        *string `json:"action"`
	CurrentStreak *int    `json:"current_streak"`
}

// CreateGoalStreak godoc
//
// @Summary Create goal streak
// @Tags goal-streaks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateGoalStreakRequest true "Goal streak"
// @Success 201 {object} entity.GoalStreak
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /goal-streaks [post]
func (s *Server) CreateGoalStreak(w http.ResponseWriter, r *http.Request) {
	logger := applog.FromContext(r.Context())
	uid, ok := s.requireUID(w, r, "create goal streak")
	if !ok {
		return
	}
	var req service.CreateGoalStreakRequest
	err := decodeBody(r, &req)
	if err != nil {
		logger.Error("create goal streak error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	gs, err := s.goalStreaksService.Create(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, r, "create goal streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, gs)
	logger.Info("goal streak created", slog.String("streak_id", gs.ID.String()))
}

// GetGoalStreaks godoc
//
// @Summary List goal streaks
// @Tags goal-streaks
// @Produce json
// @Security BearerAuth
// @Param mode query string false "daily, free or do_dont"
// @Success 200 {object} map[string][]entity.GoalStreak
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /goal-streaks [get]
func (s *Server) GetGoalStreaks(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUID(w, r, "get goal streaks")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	list, err := s.goalStreaksService.List(ctx, uid, entity.StreakMode(r.URL.Query().Get("mode")))
	if err != nil {
		writeServiceError(w, r, "get goal streaks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"goal_streaks": list,
	})
}

// CheckinGoalStreak godoc
//
// @Summary Check in, undo or set streak
// @Tags goal-streaks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal streak ID"
// @Param body body api.CheckinRequest true "Action or new value"
// @Success 200 {object} service.CheckinResult
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /goal-streaks/{id} [patch]
func (s *Server) CheckinGoalStreak(w http.ResponseWriter, r *http.Request) {
	logger := applog.FromContext(r.Context())
	uid, ok := s.requireUID(w, r, "check-in")
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("check-in error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal streak id in path value", nil)
		return
	}
	var req CheckinRequest
	err = decodeBody(r, &req)
	if err != nil || (req.Action == nil && req.CurrentStreak == nil) {
		logger.Error("check-in error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "expected action or current_streak", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	var res *service.CheckinResult
	if req.Action != nil {
		action, err := streak.ParseAction(*req.Action)
		if err != nil {
			writeServiceError(w, r, "check-in", err)
			return
		}
		res, err = s.goalStreaksService.Checkin(ctx, id, uid, action)
		if err != nil {
			writeServiceError(w, r, "check-in", err)
			return
		}
	} else {
		res, err = s.goalStreaksService.SetStreak(ctx, id, uid, *req.CurrentStreak)
		if err != nil {
			writeServiceError(w, r, "set streak", err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info("goal streak progressed",
		slog.String("streak_id", id.String()),
		slog.Int("current_streak", res.GoalStreak.CurrentStreak),
	)
}

// UpdateGoalStreak godoc
//
// @Summary Edit goal streak details
// @Tags goal-streaks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal streak ID"
// @Param body body service.UpdateGoalStreakRequest true "Changed fields"
// @Success 200 {object} entity.GoalStreak
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /goal-streaks/{id} [put]
func (s *Server) UpdateGoalStreak(w http.ResponseWriter, r *http.Request) {
	logger := applog.FromContext(r.Context())
	uid, ok := s.requireUID(w, r, "update goal streak")
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("update goal streak error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal streak id in path value", nil)
		return
	}
	var req service.UpdateGoalStreakRequest
	err = decodeBody(r, &req)
	if err != nil {
		logger.Error("update goal streak error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	gs, err := s.goalStreaksService.Update(ctx, id, uid, &req)
	if err != nil {
		writeServiceError(w, r, "update goal streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, gs)
}

// DeleteGoalStreak godoc
//
// @Summary Delete goal streak
// @Tags goal-streaks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal streak ID"
// @Success 204
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /goal-streaks/{id} [delete]
func (s *Server) DeleteGoalStreak(w http.ResponseWriter, r *http.Request) {
	logger := applog.FromContext(r.Context())
	uid, ok := s.requireUID(w, r, "goal streak deletion")
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("goal streak deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal streak id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.goalStreaksService.Delete(ctx, id, uid)
	if err != nil {
		writeServiceError(w, r, "goal streak deletion", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("goal streak deleted", slog.String("streak_id", id.String()))
}
