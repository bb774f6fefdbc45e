// Package stats aggregates goal streaks and habit logs over date windows.
package stats

import (
	"cloud.google.com/go/civil"
	"github.com/limbo/lifeflow/internal/calendar"
	"github.com/limbo/lifeflow/internal/percent"
	"github.com/limbo/lifeflow/pkg/entity"
)

type RangeStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
	Percentage int `json:"percentage"`
}

// Insights holds one RangeStats per window around a reference date.
// Year is the calendar year of the date.
type Insights struct {
	Day   RangeStats `json:"day"`
	Week  RangeStats `json:"week"`
	Month RangeStats `json:"month"`
	Year  RangeStats `json:"year"`
}

// AggregateRangeStats counts the streaks whose [StartDate, EndDate] overlaps
// [start, end]. One of them is completed when its last check-in falls inside
// the range. Streaks missing either bound never take part.
func AggregateRangeStats(streaks []entity.GoalStreak, start, end civil.Date) (RangeStats, error) {
	w, err := calendar.NewWindow(start, end)
	if err != nil {
		return RangeStats{}, err
	}
	return aggregate(streaks, w), nil
}

func aggregate(streaks []entity.GoalStreak, w calendar.Window) RangeStats {
	var res RangeStats
	for i := range streaks {
		gs := &streaks[i]
		if gs.StartDate == nil || gs.EndDate == nil {
			continue
		}
		if !w.Overlaps(*gs.StartDate, *gs.EndDate) {
			continue
		}
		res.Total++
		if gs.LastCheckinDate != nil && w.Contains(*gs.LastCheckinDate) {
			res.Completed++
		}
	}
	res.Failed = res.Total - res.Completed
	res.Percentage = percent.Of(res.Completed, res.Total)
	return res
}

// PeriodInsights computes day, week, month and calendar-year stats around ref.
func PeriodInsights(streaks []entity.GoalStreak, ref civil.Date) (Insights, error) {
	var res Insights
	targets := []struct {
		tf  calendar.Timeframe
		out *RangeStats
	}{
		{calendar.Day, &res.Day},
		{calendar.Week, &res.Week},
		{calendar.Month, &res.Month},
		{calendar.Year, &res.Year},
	}
	for _, t := range targets {
		w, err := calendar.ResolveWindow(t.tf, ref)
		if err != nil {
			return Insights{}, err
		}
		*t.out = aggregate(streaks, w)
	}
	return res, nil
}
