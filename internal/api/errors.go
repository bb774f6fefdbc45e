package api

import (
	"errors"
	"log/slog"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/limbo/lifeflow/internal/calendar"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/pkg/httputil"
	applog "github.com/limbo/lifeflow/pkg/logger"
)

type errorStatus struct {
	err     error
	code    int
	message string
	// Echo the error text back to the client
	details bool
}

var errorStatuses = []errorStatus{
	{service.ErrValidation, http.StatusBadRequest, "invalid request", true},
	{errorvalues.ErrInvalidRange, http.StatusBadRequest, "invalid date range", true},
	{errorvalues.ErrInvalidDate, http.StatusBadRequest, "invalid date", true},
	{errorvalues.ErrInvalidTimeframe, http.StatusBadRequest, "invalid timeframe", true},
	{errorvalues.ErrUnknownMode, http.StatusBadRequest, "unknown goal streak mode", true},
	{errorvalues.ErrUnknownAction, http.StatusBadRequest, "unknown check-in action", true},
	{errorvalues.ErrTargetBelowStreak, http.StatusBadRequest, "target days can't be lower than current streak", false},
	{errorvalues.ErrCheckDateNotAllowed, http.StatusBadRequest, "can't log a habit on a future date", false},
	{errorvalues.ErrWrongCredentials, http.StatusForbidden, "invalid username or password", false},
	{errorvalues.ErrAlreadyCheckedIn, http.StatusConflict, "already checked in today", false},
	{errorvalues.ErrStreakConflict, http.StatusConflict, "goal streak was changed concurrently, try again", false},
	{errorvalues.ErrUserExists, http.StatusConflict, "user with such name already exists", false},
	{errorvalues.ErrUserHasHabit, http.StatusConflict, "habit already exists", false},
	// Foreign records are reported as missing
	{errorvalues.ErrWrongOwner, http.StatusNotFound, "record doesn't exist", false},
	{errorvalues.ErrHabitNotFound, http.StatusNotFound, "habit doesn't exist", false},
	{errorvalues.ErrStreakNotFound, http.StatusNotFound, "goal streak doesn't exist", false},
	{errorvalues.ErrProfileNotFound, http.StatusNotFound, "profile doesn't exist", false},
	{errorvalues.ErrUserNotFound, http.StatusNotFound, "user doesn't exist", false},
}

// writeServiceError maps a sentinel carried by err to a status code.
// Anything unknown is a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger := applog.FromContext(r.Context())
	for _, es := range errorStatuses {
		if !errors.Is(err, es.err) {
			continue
		}
		logger.Warn(op+" error", slog.String("error", err.Error()))
		var details error
		if es.details {
			details = err
		}
		httputil.WriteErrorResponse(w, es.code, es.message, details)
		return
	}
	logger.Error(op+" error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
}

func (s *Server) requireUID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		applog.FromContext(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, false
	}
	return uid, true
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// dateQuery reads an optional YYYY-MM-DD query value. Absent means nil.
func dateQuery(r *http.Request, key string) (*civil.Date, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	d, err := calendar.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
