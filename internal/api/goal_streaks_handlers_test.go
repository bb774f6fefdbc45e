package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/lifeflow/internal/api"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/internal/streak"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	streakID  = uuid.New()
	startDate = civil.Date{Year: 2025, Month: time.March, Day: 1}
	endDate   = civil.Date{Year: 2025, Month: time.March, Day: 31}
)

func testStreak(current int) *entity.GoalStreak {
	last := civil.Date{Year: 2025, Month: time.March, Day: 12}
	return &entity.GoalStreak{
		ID:              streakID,
		UserID:          userID,
		Title:           "read",
		Mode:            entity.ModeDaily,
		TargetDays:      30,
		CurrentStreak:   current,
		LongestStreak:   current,
		StartDate:       &startDate,
		EndDate:         &endDate,
		LastCheckinDate: &last,
	}
}

func TestCreateGoalStreak(t *testing.T) {
	serv, m, token := newTestServer(t)
	req := service.CreateGoalStreakRequest{
		Title:      "read",
		Mode:       entity.ModeDaily,
		TargetDays: 30,
		StartDate:  &startDate,
		EndDate:    &endDate,
	}
	testCases := []struct {
		Desc            string
		Body            any
		MockPrepareFunc func()
		ExpectedCode    int
	}{
		{
			Desc: "created",
			Body: req,
			MockPrepareFunc: func() {
				m.streaks.EXPECT().Create(gomock.Any(), userID, &req).Return(testStreak(0), nil)
			},
			ExpectedCode: http.StatusCreated,
		},
		{
			Desc: "daily without dates",
			Body: service.CreateGoalStreakRequest{Title: "read", Mode: entity.ModeDaily, TargetDays: 30},
			MockPrepareFunc: func() {
				m.streaks.EXPECT().Create(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrInvalidRange)
			},
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:            "malformed date",
			Body:            `{"title":"read","mode":"daily","target_days":30,"start_date":"2025-13-01"}`,
			MockPrepareFunc: func() {},
			ExpectedCode:    http.StatusBadRequest,
		},
		{
			Desc: "service error",
			Body: req,
			MockPrepareFunc: func() {
				m.streaks.EXPECT().Create(gomock.Any(), userID, &req).Return(nil, errors.New("service error"))
			},
			ExpectedCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			rr := do(t, serv, http.MethodPost, "/api/v1/goal-streaks", token, tc.Body)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
			if tc.ExpectedCode == http.StatusCreated {
				var gs entity.GoalStreak
				decode(t, rr, &gs)
				assert.Equal(t, streakID, gs.ID)
				assert.Equal(t, startDate, *gs.StartDate)
			}
		})
	}
}

func TestGetGoalStreaks(t *testing.T) {
	serv, m, token := newTestServer(t)
	t.Run("all", func(t *testing.T) {
		m.streaks.EXPECT().List(gomock.Any(), userID, entity.StreakMode("")).Return([]entity.GoalStreak{*testStreak(3)}, nil)
		rr := do(t, serv, http.MethodGet, "/api/v1/goal-streaks", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			GoalStreaks []entity.GoalStreak `json:"goal_streaks"`
		}
		decode(t, rr, &resp)
		assert.Len(t, resp.GoalStreaks, 1)
	})
	t.Run("by mode", func(t *testing.T) {
		m.streaks.EXPECT().List(gomock.Any(), userID, entity.ModeFree).Return([]entity.GoalStreak{}, nil)
		rr := do(t, serv, http.MethodGet, "/api/v1/goal-streaks?mode=free", token, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("unknown mode", func(t *testing.T) {
		m.streaks.EXPECT().List(gomock.Any(), userID, entity.StreakMode("weekly")).Return(nil, errorvalues.ErrUnknownMode)
		rr := do(t, serv, http.MethodGet, "/api/v1/goal-streaks?mode=weekly", token, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCheckinGoalStreak(t *testing.T) {
	serv, m, token := newTestServer(t)
	increment := string(streak.Increment)
	value := 12

	testCases := []struct {
		Desc            string
		Path            string
		Body            any
		MockPrepareFunc func()
		ExpectedCode    int
	}{
		{
			Desc: "checked in",
			Body: api.CheckinRequest{Action: &increment},
			MockPrepareFunc: func() {
				m.streaks.EXPECT().Checkin(gomock.Any(), streakID, userID, streak.Increment).Return(&service.CheckinResult{
					GoalStreak: *testStreak(7),
					Award:      &service.Award{XP: 160, TotalXP: 760, Level: 2, Unlocked: []string{"Week Warrior"}},
				}, nil)
			},
			ExpectedCode: http.StatusOK,
		},
		{
			Desc: "already checked in",
			Body: api.CheckinRequest{Action: &increment},
			MockPrepareFunc: func() {
				m.streaks.EXPECT().Checkin(gomock.Any(), streakID, userID, streak.Increment).Return(nil, errorvalues.ErrAlreadyCheckedIn)
			},
			ExpectedCode: http.StatusConflict,
		},
		{
			Desc: "lost to concurrent writer",
			Body: api.CheckinRequest{Action: &increment},
			MockPrepareFunc: func() {
				m.streaks.EXPECT().Checkin(gomock.Any(), streakID, userID, streak.Increment).Return(nil, errorvalues.ErrStreakConflict)
			},
			ExpectedCode: http.StatusConflict,
		},
		{
			Desc: "streak not found",
			Body: api.CheckinRequest{Action: &increment},
			MockPrepareFunc: func() {
				m.streaks.EXPECT().Checkin(gomock.Any(), streakID, userID, streak.Increment).Return(nil, errorvalues.ErrStreakNotFound)
			},
			ExpectedCode: http.StatusNotFound,
		},
		{
			Desc: "foreign streak",
			Body: api.CheckinRequest{Action: &increment},
			MockPrepareFunc: func() {
				m.streaks.EXPECT().Checkin(gomock.Any(), streakID, userID, streak.Increment).Return(nil, errorvalues.ErrWrongOwner)
			},
			ExpectedCode: http.StatusNotFound,
		},
		{
			Desc:            "unknown action",
			Body:            `{"action":"double"}`,
			MockPrepareFunc: func() {},
			ExpectedCode:    http.StatusBadRequest,
		},
		{
			Desc: "set streak",
			Body: api.CheckinRequest{CurrentStreak: &value},
			MockPrepareFunc: func() {
				m.streaks.EXPECT().SetStreak(gomock.Any(), streakID, userID, 12).Return(&service.CheckinResult{GoalStreak: *testStreak(12)}, nil)
			},
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:            "neither action nor value",
			Body:            `{}`,
			MockPrepareFunc: func() {},
			ExpectedCode:    http.StatusBadRequest,
		},
		{
			Desc:            "invalid id",
			Path:            "/api/v1/goal-streaks/42",
			Body:            api.CheckinRequest{Action: &increment},
			MockPrepareFunc: func() {},
			ExpectedCode:    http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			path := tc.Path
			if path == "" {
				path = "/api/v1/goal-streaks/" + streakID.String()
			}
			rr := do(t, serv, http.MethodPatch, path, token, tc.Body)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
	t.Run("award in response", func(t *testing.T) {
		m.streaks.EXPECT().Checkin(gomock.Any(), streakID, userID, streak.Increment).Return(&service.CheckinResult{
			GoalStreak: *testStreak(7),
			Award:      &service.Award{XP: 160, TotalXP: 760, Level: 2, Unlocked: []string{"Week Warrior"}},
		}, nil)
		rr := do(t, serv, http.MethodPatch, "/api/v1/goal-streaks/"+streakID.String(), token, api.CheckinRequest{Action: &increment})
		require.Equal(t, http.StatusOK, rr.Code)
		var res service.CheckinResult
		decode(t, rr, &res)
		assert.Equal(t, 7, res.GoalStreak.CurrentStreak)
		require.NotNil(t, res.Award)
		assert.Equal(t, []string{"Week Warrior"}, res.Award.Unlocked)
	})
}

func TestUpdateGoalStreak(t *testing.T) {
	serv, m, token := newTestServer(t)
	title := "read more"
	target := 2
	t.Run("updated", func(t *testing.T) {
		req := service.UpdateGoalStreakRequest{Title: &title}
		updated := testStreak(3)
		updated.Title = title
		m.streaks.EXPECT().Update(gomock.Any(), streakID, userID, &req).Return(updated, nil)
		rr := do(t, serv, http.MethodPut, "/api/v1/goal-streaks/"+streakID.String(), token, req)
		require.Equal(t, http.StatusOK, rr.Code)
		var gs entity.GoalStreak
		decode(t, rr, &gs)
		assert.Equal(t, title, gs.Title)
	})
	t.Run("target below streak", func(t *testing.T) {
		req := service.UpdateGoalStreakRequest{TargetDays: &target}
		m.streaks.EXPECT().Update(gomock.Any(), streakID, userID, &req).Return(nil, errorvalues.ErrTargetBelowStreak)
		rr := do(t, serv, http.MethodPut, "/api/v1/goal-streaks/"+streakID.String(), token, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteGoalStreak(t *testing.T) {
	serv, m, token := newTestServer(t)
	t.Run("deleted", func(t *testing.T) {
		m.streaks.EXPECT().Delete(gomock.Any(), streakID, userID).Return(nil)
		rr := do(t, serv, http.MethodDelete, "/api/v1/goal-streaks/"+streakID.String(), token, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("not found", func(t *testing.T) {
		m.streaks.EXPECT().Delete(gomock.Any(), streakID, userID).Return(errorvalues.ErrStreakNotFound)
		rr := do(t, serv, http.MethodDelete, "/api/v1/goal-streaks/"+streakID.String(), token, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
