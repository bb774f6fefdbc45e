package stats

import (
	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/lifeflow/internal/calendar"
	"github.com/limbo/lifeflow/internal/percent"
	"github.com/limbo/lifeflow/pkg/entity"
)

type DailyCompletion struct {
	Date           civil.Date `json:"date"`
	CompletedToday int        `json:"completed_today"`
	TotalHabits    int        `json:"total_habits"`
	CompletionRate int        `json:"completion_rate"`
}

// DailyTaskCompletion rates one date against every habit definition,
// logged that day or not.
func DailyTaskCompletion(logs []entity.HabitLogEntry, totalHabits int, date civil.Date) DailyCompletion {
	done := make(map[uuid.UUID]struct{})
	for _, l := range logs {
		if l.Date == date && l.Completed {
			done[l.HabitID] = struct{}{}
		}
	}
	return DailyCompletion{
		Date:           date,
		CompletedToday: len(done),
		TotalHabits:    totalHabits,
		CompletionRate: percent.Of(len(done), totalHabits),
	}
}

type DaySummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// WeeklySummary buckets log rows inside w by date. Keys are YYYY-MM-DD;
// dates without rows are absent.
func WeeklySummary(logs []entity.HabitLogEntry, w calendar.Window) map[string]DaySummary {
	res := make(map[string]DaySummary)
	for _, l := range logs {
		if !w.Contains(l.Date) {
			continue
		}
		key := l.Date.String()
		s := res[key]
		s.Total++
		if l.Completed {
			s.Completed++
		}
		res[key] = s
	}
	return res
}

type LogCompletion struct {
	Percentage int `json:"percentage"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
}

// CompletionOf rates log rows inside w; a row not marked completed is failed.
func CompletionOf(logs []entity.HabitLogEntry, w calendar.Window) LogCompletion {
	var total, completed int
	for _, l := range logs {
		if !w.Contains(l.Date) {
			continue
		}
		total++
		if l.Completed {
			completed++
		}
	}
	return LogCompletion{
		Percentage: percent.Of(completed, total),
		Completed:  completed,
		Failed:     total - completed,
	}
}

type DoVsDont struct {
	Label       string     `json:"label"`
	Date        civil.Date `json:"date"`
	DoPercent   int        `json:"doPercent"`
	DontPercent int        `json:"dontPercent"`
}

var weekLabels = [7]string{"M", "T", "W", "T", "F", "S", "S"}

// WeeklyDoVsDont compares positive and negative habits for each day of the
// Monday-start week around ref. A completed negative habit is a slip, so
// dontPercent measures the share that was avoided.
func WeeklyDoVsDont(logs []entity.HabitLogEntry, types map[uuid.UUID]entity.HabitType, ref civil.Date) []DoVsDont {
	w := calendar.WeekWindow(ref)
	type tally struct{ doTotal, doDone, dontTotal, dontDone int }
	byDate := make(map[civil.Date]*tally)
	for _, l := range logs {
		if !w.Contains(l.Date) {
			continue
		}
		t, ok := byDate[l.Date]
		if !ok {
			t = &tally{}
			byDate[l.Date] = t
		}
		switch types[l.HabitID] {
		case entity.HabitPositive:
			t.doTotal++
			if l.Completed {
				t.doDone++
			}
		case entity.HabitNegative:
			t.dontTotal++
			if l.Completed {
				t.dontDone++
			}
		}
	}
	res := make([]DoVsDont, 0, 7)
	for i, d := range w.Days() {
		t, ok := byDate[d]
		if !ok {
			t = &tally{}
		}
		doTotal, dontTotal := max(t.doTotal, 1), max(t.dontTotal, 1)
		res = append(res, DoVsDont{
			Label:       weekLabels[i],
			Date:        d,
			DoPercent:   percent.Of(t.doDone, doTotal),
			DontPercent: percent.Of(dontTotal-t.dontDone, dontTotal),
		})
	}
	return res
}
