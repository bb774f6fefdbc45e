package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/lifeflow/internal/activity"
	"github.com/limbo/lifeflow/internal/calendar"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/repository/mocks"
	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEntry(habit uuid.UUID, date civil.Date, completed bool) entity.HabitLogEntry {
	return entity.HabitLogEntry{
		ID:        uuid.New(),
		HabitID:   habit,
		UserID:    userID,
		Date:      date,
		Completed: completed,
	}
}

func TestToggleLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	habits := mocks.NewMockHabitsRepositoryI(ctrl)
	logs := mocks.NewMockHabitLogsRepositoryI(ctrl)
	s := service.NewHabitLogsService(habits, logs, testClock(t))
	ctx := context.Background()
	done := true
	foreign := testHabit
	foreign.UserID = uuid.New()

	testCases := []struct {
		Desc            string
		Req             service.ToggleLogRequest
		MockPrepareFunc func()
		ExpectedErr     error
	}{
		{
			Desc: "flip today",
			Req:  service.ToggleLogRequest{HabitID: habitID},
			MockPrepareFunc: func() {
				habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
				logs.EXPECT().Toggle(gomock.Any(), &entity.HabitLogEntry{
					HabitID: habitID,
					UserID:  userID,
					Date:    today,
				}, nil).DoAndReturn(func(_ context.Context, e *entity.HabitLogEntry, _ *bool) (*entity.HabitLogEntry, error) {
					res := *e
					res.ID = uuid.New()
					res.Completed = true
					res.CreatedAt = time.Now()
					return &res, nil
				})
			},
		},
		{
			Desc: "explicit value on past date",
			Req:  service.ToggleLogRequest{HabitID: habitID, Date: datePtr(today.AddDays(-2)), Completed: &done},
			MockPrepareFunc: func() {
				habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
				logs.EXPECT().Toggle(gomock.Any(), &entity.HabitLogEntry{
					HabitID: habitID,
					UserID:  userID,
					Date:    today.AddDays(-2),
				}, &done).Return(&entity.HabitLogEntry{HabitID: habitID, Date: today.AddDays(-2), Completed: true}, nil)
			},
		},
		{
			Desc:            "future date",
			Req:             service.ToggleLogRequest{HabitID: habitID, Date: datePtr(today.AddDays(1))},
			MockPrepareFunc: func() {},
			ExpectedErr:     errorvalues.ErrCheckDateNotAllowed,
		},
		{
			Desc:            "missing habit id",
			Req:             service.ToggleLogRequest{},
			MockPrepareFunc: func() {},
			ExpectedErr:     service.ErrValidation,
		},
		{
			Desc: "foreign habit",
			Req:  service.ToggleLogRequest{HabitID: habitID},
			MockPrepareFunc: func() {
				habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&foreign, nil)
			},
			ExpectedErr: errorvalues.ErrWrongOwner,
		},
		{
			Desc: "habit not found",
			Req:  service.ToggleLogRequest{HabitID: habitID},
			MockPrepareFunc: func() {
				habits.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
			},
			ExpectedErr: errorvalues.ErrHabitNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			entry, err := s.Toggle(ctx, userID, &tc.Req)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, entry.Completed)
			assert.Equal(t, habitID, entry.HabitID)
		})
	}
}

func TestDayLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	habits := mocks.NewMockHabitsRepositoryI(ctrl)
	logs := mocks.NewMockHabitLogsRepositoryI(ctrl)
	s := service.NewHabitLogsService(habits, logs, testClock(t))
	ctx := context.Background()
	rows := []entity.HabitLogEntry{
		logEntry(habitID, today, true),
		logEntry(uuid.New(), today, false),
	}

	logs.EXPECT().GetByUserAndDateRange(gomock.Any(), userID, today, today).Return(rows, nil)
	habits.EXPECT().CountByUserID(gomock.Any(), userID).Return(4, nil)
	res, err := s.DayLogs(ctx, userID, nil)
	require.NoError(t, err)
	assert.Equal(t, today, res.Date)
	assert.Equal(t, rows, res.Logs)
	assert.Equal(t, 1, res.Completion.CompletedToday)
	assert.Equal(t, 4, res.Completion.TotalHabits)
	assert.Equal(t, 25, res.Completion.CompletionRate)
}

func TestWeekSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	habits := mocks.NewMockHabitsRepositoryI(ctrl)
	logs := mocks.NewMockHabitLogsRepositoryI(ctrl)
	s := service.NewHabitLogsService(habits, logs, testClock(t))
	ctx := context.Background()
	monday := today.AddDays(-2)
	sunday := today.AddDays(4)

	t.Run("current week", func(t *testing.T) {
		logs.EXPECT().GetByUserAndDateRange(gomock.Any(), userID, monday, sunday).Return([]entity.HabitLogEntry{
			logEntry(habitID, monday, true),
			logEntry(uuid.New(), monday, false),
			logEntry(habitID, today, true),
		}, nil)
		res, err := s.Week(ctx, userID, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, monday, res.Start)
		assert.Equal(t, sunday, res.End)
		assert.Equal(t, 2, res.Days[monday.String()].Total)
		assert.Equal(t, 1, res.Days[monday.String()].Completed)
		assert.Equal(t, 1, res.Days[today.String()].Completed)
		assert.Len(t, res.Days, 2)
	})
	t.Run("explicit range", func(t *testing.T) {
		start := today.AddDays(-20)
		logs.EXPECT().GetByUserAndDateRange(gomock.Any(), userID, start, today).Return(nil, nil)
		res, err := s.Week(ctx, userID, &start, datePtr(today))
		require.NoError(t, err)
		assert.Empty(t, res.Days)
	})
	t.Run("one bound missing", func(t *testing.T) {
		_, err := s.Week(ctx, userID, datePtr(today), nil)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
	})
	t.Run("inverted", func(t *testing.T) {
		_, err := s.Week(ctx, userID, datePtr(today), datePtr(monday))
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
	})
}

func TestMonthlyCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	habits := mocks.NewMockHabitsRepositoryI(ctrl)
	logs := mocks.NewMockHabitLogsRepositoryI(ctrl)
	s := service.NewHabitLogsService(habits, logs, testClock(t))
	ctx := context.Background()
	first := civil.Date{Year: 2025, Month: time.March, Day: 1}
	last := civil.Date{Year: 2025, Month: time.March, Day: 31}

	t.Run("success", func(t *testing.T) {
		logs.EXPECT().GetByUserAndDateRange(gomock.Any(), userID, first, last).Return([]entity.HabitLogEntry{
			logEntry(habitID, first, true),
			logEntry(habitID, today, true),
			logEntry(habitID, today.AddDays(-1), false),
		}, nil)
		res, err := s.MonthlyCompletion(ctx, userID, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Completed)
		assert.Equal(t, 1, res.Failed)
		assert.Equal(t, 67, res.Percentage)
	})
	t.Run("db error", func(t *testing.T) {
		logs.EXPECT().GetByUserAndDateRange(gomock.Any(), userID, first, last).Return(nil, errors.New("db error"))
		_, err := s.MonthlyCompletion(ctx, userID, nil)
		assert.Error(t, err)
	})
}

func TestDoVsDont(t *testing.T) {
	ctrl := gomock.NewController(t)
	habits := mocks.NewMockHabitsRepositoryI(ctrl)
	logs := mocks.NewMockHabitLogsRepositoryI(ctrl)
	s := service.NewHabitLogsService(habits, logs, testClock(t))
	ctx := context.Background()
	smoking := uuid.New()

	logs.EXPECT().GetByUserAndDateRange(gomock.Any(), userID, today.AddDays(-2), today.AddDays(4)).Return([]entity.HabitLogEntry{
		logEntry(habitID, today, true),
		logEntry(smoking, today, true),
	}, nil)
	habits.EXPECT().TypesByUserID(gomock.Any(), userID).Return(map[uuid.UUID]entity.HabitType{
		habitID: entity.HabitPositive,
		smoking: entity.HabitNegative,
	}, nil)
	res, err := s.DoVsDont(ctx, userID, nil)
	require.NoError(t, err)
	require.Len(t, res, 7)
	assert.Equal(t, "W", res[2].Label)
	assert.Equal(t, 100, res[2].DoPercent)
	assert.Equal(t, 0, res[2].DontPercent)
	assert.Equal(t, 0, res[0].DoPercent)
	assert.Equal(t, 100, res[0].DontPercent)
}

func TestActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	habits := mocks.NewMockHabitsRepositoryI(ctrl)
	logs := mocks.NewMockHabitLogsRepositoryI(ctrl)
	s := service.NewHabitLogsService(habits, logs, testClock(t))
	ctx := context.Background()
	other := uuid.New()

	t.Run("week", func(t *testing.T) {
		monday := today.AddDays(-2)
		logs.EXPECT().GetByUserAndDateRange(gomock.Any(), userID, monday, today.AddDays(4)).Return([]entity.HabitLogEntry{
			logEntry(habitID, monday, true),
			logEntry(other, monday, true),
			logEntry(habitID, monday.AddDays(1), true),
			logEntry(other, monday.AddDays(1), true),
			logEntry(habitID, today, true),
		}, nil)
		habits.EXPECT().CountByUserID(gomock.Any(), userID).Return(2, nil)
		res, err := s.Activity(ctx, userID, calendar.Week, nil)
		require.NoError(t, err)
		require.Len(t, res.Days, 7)
		assert.Equal(t, activity.LevelPerfect, res.Days[0].Level)
		assert.Equal(t, activity.LevelHigh, res.Days[2].Level)
		assert.Equal(t, activity.LevelNone, res.Days[3].Level)
		assert.Equal(t, 2, res.Days[3].Total)
		assert.Equal(t, []civil.Date{monday, monday.AddDays(1)}, res.PerfectRun)
		assert.Equal(t, 3, res.Stats.ActiveDays)
		assert.Equal(t, 2, res.Stats.PerfectDays)
	})
	t.Run("trailing year", func(t *testing.T) {
		logs.EXPECT().GetByUserAndDateRange(gomock.Any(), userID, today.AddDays(-364), today).Return(nil, nil)
		habits.EXPECT().CountByUserID(gomock.Any(), userID).Return(0, nil)
		res, err := s.Activity(ctx, userID, calendar.Year, nil)
		require.NoError(t, err)
		assert.Equal(t, 365, res.Stats.TotalDays)
		assert.Zero(t, res.Stats.ActiveDays)
	})
	t.Run("unknown timeframe", func(t *testing.T) {
		_, err := s.Activity(ctx, userID, "decade", nil)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTimeframe)
	})
}
