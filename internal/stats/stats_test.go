package stats_test

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/lifeflow/internal/calendar"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/stats"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(t *testing.T, s string) *civil.Date {
	t.Helper()
	res, err := civil.ParseDate(s)
	require.NoError(t, err)
	return &res
}

func bounded(t *testing.T, start, end, last string) entity.GoalStreak {
	gs := entity.GoalStreak{
		ID:         uuid.New(),
		Mode:       entity.ModeDaily,
		TargetDays: 30,
		StartDate:  d(t, start),
		EndDate:    d(t, end),
	}
	if last != "" {
		gs.LastCheckinDate = d(t, last)
	}
	return gs
}

func TestAggregateRangeStats(t *testing.T) {
	streaks := []entity.GoalStreak{
		bounded(t, "2024-02-01", "2024-02-29", "2024-02-24"),
		bounded(t, "2024-02-20", "2024-03-20", "2024-02-22"),
		bounded(t, "2024-02-24", "2024-02-24", ""),
		// Ends before the range.
		bounded(t, "2024-01-01", "2024-02-18", "2024-02-18"),
		// Starts after the range.
		bounded(t, "2024-02-26", "2024-03-26", "2024-02-26"),
		// Unbounded streaks are excluded.
		{ID: uuid.New(), Mode: entity.ModeDaily, TargetDays: 7, StartDate: d(t, "2024-02-01"), LastCheckinDate: d(t, "2024-02-24")},
	}
	testCases := []struct {
		Desc   string
		Start  string
		End    string
		Result stats.RangeStats
	}{
		{
			Desc:   "day",
			Start:  "2024-02-24",
			End:    "2024-02-24",
			Result: stats.RangeStats{Total: 3, Completed: 1, Failed: 2, Percentage: 33},
		},
		{
			Desc:   "week",
			Start:  "2024-02-19",
			End:    "2024-02-25",
			Result: stats.RangeStats{Total: 3, Completed: 2, Failed: 1, Percentage: 67},
		},
		{
			Desc:   "no overlapping streaks",
			Start:  "2023-06-01",
			End:    "2023-06-30",
			Result: stats.RangeStats{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			res, err := stats.AggregateRangeStats(streaks, *d(t, tc.Start), *d(t, tc.End))
			require.NoError(t, err)
			assert.Equal(t, tc.Result, res)
		})
	}
	t.Run("end before start", func(t *testing.T) {
		_, err := stats.AggregateRangeStats(streaks, *d(t, "2024-02-25"), *d(t, "2024-02-19"))
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
	})
	t.Run("no streaks", func(t *testing.T) {
		res, err := stats.AggregateRangeStats(nil, *d(t, "2024-02-19"), *d(t, "2024-02-25"))
		require.NoError(t, err)
		assert.Equal(t, stats.RangeStats{Total: 0, Completed: 0, Failed: 0, Percentage: 0}, res)
	})
}

func TestPeriodInsights(t *testing.T) {
	streaks := []entity.GoalStreak{
		bounded(t, "2024-02-01", "2024-02-29", "2024-02-24"),
		bounded(t, "2024-02-01", "2024-02-29", "2024-02-05"),
		bounded(t, "2024-06-01", "2024-06-30", "2024-06-10"),
		bounded(t, "2023-12-01", "2023-12-31", "2023-12-31"),
	}
	res, err := stats.PeriodInsights(streaks, *d(t, "2024-02-24"))
	require.NoError(t, err)
	assert.Equal(t, stats.RangeStats{Total: 2, Completed: 1, Failed: 1, Percentage: 50}, res.Day)
	assert.Equal(t, stats.RangeStats{Total: 2, Completed: 1, Failed: 1, Percentage: 50}, res.Week)
	assert.Equal(t, stats.RangeStats{Total: 2, Completed: 2, Failed: 0, Percentage: 100}, res.Month)
	assert.Equal(t, stats.RangeStats{Total: 3, Completed: 3, Failed: 0, Percentage: 100}, res.Year)
}

func TestDailyTaskCompletion(t *testing.T) {
	h1, h2 := uuid.New(), uuid.New()
	date := *d(t, "2024-02-24")
	logs := []entity.HabitLogEntry{
		{HabitID: h1, Date: date, Completed: true},
		{HabitID: h2, Date: date, Completed: false},
		{HabitID: h2, Date: *d(t, "2024-02-23"), Completed: true},
	}
	res := stats.DailyTaskCompletion(logs, 4, date)
	assert.Equal(t, stats.DailyCompletion{Date: date, CompletedToday: 1, TotalHabits: 4, CompletionRate: 25}, res)

	empty := stats.DailyTaskCompletion(nil, 0, date)
	assert.Equal(t, 0, empty.CompletionRate)
}

func TestWeeklySummary(t *testing.T) {
	h1, h2 := uuid.New(), uuid.New()
	logs := []entity.HabitLogEntry{
		{HabitID: h1, Date: *d(t, "2024-02-19"), Completed: true},
		{HabitID: h2, Date: *d(t, "2024-02-19"), Completed: false},
		{HabitID: h1, Date: *d(t, "2024-02-21"), Completed: true},
		{HabitID: h1, Date: *d(t, "2024-02-26"), Completed: true},
	}
	res := stats.WeeklySummary(logs, calendar.WeekWindow(*d(t, "2024-02-24")))
	assert.Equal(t, map[string]stats.DaySummary{
		"2024-02-19": {Total: 2, Completed: 1},
		"2024-02-21": {Total: 1, Completed: 1},
	}, res)
}

func TestCompletionOf(t *testing.T) {
	h := uuid.New()
	logs := []entity.HabitLogEntry{
		{HabitID: h, Date: *d(t, "2024-02-01"), Completed: true},
		{HabitID: h, Date: *d(t, "2024-02-02"), Completed: true},
		{HabitID: h, Date: *d(t, "2024-02-03"), Completed: false},
		{HabitID: h, Date: *d(t, "2024-03-01"), Completed: false},
	}
	res := stats.CompletionOf(logs, calendar.MonthWindow(*d(t, "2024-02-10")))
	assert.Equal(t, stats.LogCompletion{Percentage: 67, Completed: 2, Failed: 1}, res)
}

func TestWeeklyDoVsDont(t *testing.T) {
	do1, do2, dont := uuid.New(), uuid.New(), uuid.New()
	types := map[uuid.UUID]entity.HabitType{
		do1:  entity.HabitPositive,
		do2:  entity.HabitPositive,
		dont: entity.HabitNegative,
	}
	logs := []entity.HabitLogEntry{
		{HabitID: do1, Date: *d(t, "2024-02-19"), Completed: true},
		{HabitID: do2, Date: *d(t, "2024-02-19"), Completed: false},
		{HabitID: dont, Date: *d(t, "2024-02-19"), Completed: true},
		{HabitID: dont, Date: *d(t, "2024-02-20"), Completed: false},
	}
	res := stats.WeeklyDoVsDont(logs, types, *d(t, "2024-02-24"))
	require.Len(t, res, 7)
	assert.Equal(t, "M", res[0].Label)
	assert.Equal(t, 50, res[0].DoPercent)
	assert.Equal(t, 0, res[0].DontPercent)
	assert.Equal(t, 0, res[1].DoPercent)
	assert.Equal(t, 100, res[1].DontPercent)
	// Nothing logged: nothing done, nothing slipped.
	assert.Equal(t, 0, res[6].DoPercent)
	assert.Equal(t, 100, res[6].DontPercent)
	assert.Equal(t, "2024-02-25", res[6].Date.String())
}

func TestBuildDashboard(t *testing.T) {
	today := *d(t, "2024-02-24")
	done := bounded(t, "2024-02-01", "2024-02-29", "2024-02-24")
	done.CurrentStreak = 30
	open := bounded(t, "2024-02-20", "2024-03-20", "2024-02-23")
	open.CurrentStreak = 4
	future := bounded(t, "2024-03-01", "2024-03-31", "")
	rule := entity.GoalStreak{ID: uuid.New(), Mode: entity.ModeDoDont, TargetDays: 30, CurrentStreak: 12, StartDate: d(t, "2024-01-01")}
	oldRule := entity.GoalStreak{ID: uuid.New(), Mode: entity.ModeDoDont, TargetDays: 30, EndDate: d(t, "2024-01-31")}
	free := entity.GoalStreak{ID: uuid.New(), Mode: entity.ModeFree, TargetDays: 100, CurrentStreak: 45}

	res := stats.BuildDashboard([]entity.GoalStreak{done, open, future, rule, oldRule, free}, today)

	assert.Equal(t, []entity.GoalStreak{done, open}, res.TodayStreaks)
	assert.Equal(t, []entity.GoalStreak{rule}, res.DoDonts)
	assert.Equal(t, []entity.GoalStreak{free}, res.GoalStreaks)
	assert.Equal(t, stats.DashboardStats{
		CurrentStreak:  45,
		CompletionRate: 50,
		CompletedToday: 1,
		TotalToday:     2,
	}, res.Stats)
}

func TestBuildDashboardEmpty(t *testing.T) {
	res := stats.BuildDashboard(nil, *d(t, "2024-02-24"))
	assert.Empty(t, res.TodayStreaks)
	assert.NotNil(t, res.TodayStreaks)
	assert.Equal(t, stats.DashboardStats{}, res.Stats)
}
