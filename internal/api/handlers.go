package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/limbo/lifeflow/pkg/httputil"
	applog "github.com/limbo/lifeflow/pkg/logger"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type GetHabitsResponse struct {
	UserID string          `json:"uid"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
	Habits []*entity.Habit `json:"habits"`
}

// Register godoc
//
// @Summary Register new user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body api.RegisterRequest true "Credentials"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /auth/register [post]
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := applog.FromContext(r.Context())
	var req RegisterRequest
	err := decodeBody(r, &req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, "registration", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

// Login godoc
//
// @Summary Log in and get token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body api.LoginRequest true "Credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := applog.FromContext(r.Context())
	var req LoginRequest
	err := decodeBody(r, &req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, r, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// DeleteAccount godoc
//
// @Summary Delete own account
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body api.DeleteAccountRequest true "Password confirmation"
// @Success 204
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /auth/account [delete]
func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := applog.FromContext(r.Context())
	uid, ok := s.requireUID(w, r, "account deletion")
	if !ok {
		return
	}
	var req DeleteAccountRequest
	err := decodeBody(r, &req)
	if err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		writeServiceError(w, r, "account deletion", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("account deleted")
}

// CreateHabit godoc
//
// @Summary Create habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateHabitRequest true "Habit"
// @Success 201 {object} entity.Habit
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habits [post]
func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := applog.FromContext(r.Context())
	uid, ok := s.requireUID(w, r, "create habit")
	if !ok {
		return
	}
	var req service.CreateHabitRequest
	err := decodeBody(r, &req)
	if err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.habitService.CreateHabit(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, r, "create habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created", slog.String("habit_id", habit.ID.String()))
}

// GetHabits godoc
//
// @Summary List habits
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size, 1..50"
// @Param page query int false "Page number from 1"
// @Success 200 {object} api.GetHabitsResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habits [get]
func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := applog.FromContext(r.Context())
	uid, ok := s.requireUID(w, r, "get habits")
	if !ok {
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	habits, err := s.habitService.GetUserHabits(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeServiceError(w, r, "getting habits list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Habits: habits,
	})
	logger.Info("habits provided")
}

// GetHabit godoc
//
// @Summary Get habit
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID"
// @Success 200 {object} entity.Habit
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habits/{id} [get]
func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := applog.FromContext(r.Context())
	uid, ok := s.requireUID(w, r, "get habit")
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("get habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.habitService.GetHabit(ctx, id, uid)
	if err != nil {
		writeServiceError(w, r, "get habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

// DeleteHabit godoc
//
// @Summary Delete habit
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID"
// @Success 204
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habits/{id} [delete]
func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := applog.FromContext(r.Context())
	uid, ok := s.requireUID(w, r, "habit deletion")
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("habit deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.habitService.DeleteHabit(ctx, id, uid)
	if err != nil {
		writeServiceError(w, r, "habit deletion", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("habit deleted", slog.String("habit_id", id.String()))
}
