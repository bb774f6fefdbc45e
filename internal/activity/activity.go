// Package activity classifies days of habit completion for the heatmap.
package activity

import (
	"cloud.google.com/go/civil"
	"github.com/limbo/lifeflow/internal/calendar"
	"github.com/limbo/lifeflow/internal/percent"
	"github.com/limbo/lifeflow/pkg/entity"
)

// Level is the heatmap intensity of a day, 0 (nothing done) to 3 (everything done).
type Level int

const (
	LevelNone Level = iota
	LevelLow
	LevelHigh
	LevelPerfect
)

// minPerfectRun is the shortest run of perfect days that gets highlighted.
const minPerfectRun = 2

// DayCount is the completion of one date against the number of tracked habits.
type DayCount struct {
	Date      civil.Date
	Completed int
	Total     int
}

type Day struct {
	Date      civil.Date `json:"date"`
	Level     Level      `json:"level"`
	Total     int        `json:"total"`
	Completed int        `json:"completed"`
}

type Stats struct {
	TotalDays    int `json:"totalDays"`
	ActiveDays   int `json:"activeDays"`
	PerfectDays  int `json:"perfectDays"`
	CoverageRate int `json:"coverageRate"`
}

type Result struct {
	Days []Day `json:"days"`
	// PerfectRun holds the dates inside runs of at least two consecutive perfect days.
	PerfectRun []civil.Date `json:"perfectRun"`
	Stats      Stats        `json:"stats"`
}

// LevelFor maps completed/total to a Level. A non-positive total counts as
// fully done once anything was completed.
func LevelFor(completed, total int) Level {
	if completed <= 0 {
		return LevelNone
	}
	switch {
	case total <= 0 || completed >= total:
		return LevelPerfect
	case 2*completed >= total:
		return LevelHigh
	}
	return LevelLow
}

// Classify returns one Day per date of w, in order. Dates with no entry in
// counts are reported as zero completed out of denominator.
func Classify(counts []DayCount, w calendar.Window, denominator int) Result {
	byDate := make(map[civil.Date]DayCount, len(counts))
	for _, c := range counts {
		if w.Contains(c.Date) {
			byDate[c.Date] = c
		}
	}
	res := Result{
		Days:       make([]Day, 0, w.Len()),
		PerfectRun: []civil.Date{},
	}
	for _, d := range w.Days() {
		c, ok := byDate[d]
		if !ok {
			c = DayCount{Date: d, Total: denominator}
		}
		day := Day{
			Date:      d,
			Level:     LevelFor(c.Completed, c.Total),
			Total:     c.Total,
			Completed: c.Completed,
		}
		if day.Level > LevelNone {
			res.Stats.ActiveDays++
		}
		if day.Level == LevelPerfect {
			res.Stats.PerfectDays++
		}
		res.Days = append(res.Days, day)
	}
	res.Stats.TotalDays = len(res.Days)
	res.Stats.CoverageRate = percent.Of(res.Stats.ActiveDays, res.Stats.TotalDays)
	res.PerfectRun = PerfectRuns(res.Days)
	return res
}

// PerfectRuns collects dates of perfect days that belong to a run of
// consecutive perfect days of length two or more. A lone perfect day is left out.
func PerfectRuns(days []Day) []civil.Date {
	dates := []civil.Date{}
	var run []civil.Date
	flush := func() {
		if len(run) >= minPerfectRun {
			dates = append(dates, run...)
		}
		run = run[:0]
	}
	for _, d := range days {
		if d.Level != LevelPerfect {
			flush()
			continue
		}
		if len(run) > 0 && run[len(run)-1].AddDays(1) != d.Date {
			flush()
		}
		run = append(run, d.Date)
	}
	flush()
	return dates
}

// CountLogs rolls habit log rows up into per-date completion counts.
// Total is the number of habit definitions, whether logged that day or not.
func CountLogs(logs []entity.HabitLogEntry, habits int) []DayCount {
	order := make([]civil.Date, 0)
	byDate := make(map[civil.Date]*DayCount)
	for _, l := range logs {
		c, ok := byDate[l.Date]
		if !ok {
			c = &DayCount{Date: l.Date, Total: habits}
			byDate[l.Date] = c
			order = append(order, l.Date)
		}
		if l.Completed {
			c.Completed++
		}
	}
	res := make([]DayCount, 0, len(order))
	for _, d := range order {
		res = append(res, *byDate[d])
	}
	return res
}
