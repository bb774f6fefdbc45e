package stats

import (
	"cloud.google.com/go/civil"
	"github.com/limbo/lifeflow/internal/percent"
	"github.com/limbo/lifeflow/pkg/entity"
)

type DashboardStats struct {
	CurrentStreak  int `json:"currentStreak"`
	CompletionRate int `json:"completionRate"`
	CompletedToday int `json:"completedToday"`
	TotalToday     int `json:"totalToday"`
}

type Dashboard struct {
	TodayStreaks []entity.GoalStreak `json:"todayStreaks"`
	GoalStreaks  []entity.GoalStreak `json:"goalStreaks"`
	DoDonts      []entity.GoalStreak `json:"doDonts"`
	Stats        DashboardStats      `json:"stats"`
}

// BuildDashboard splits streaks for the home screen:
// daily streaks scheduled on today, do/don't rules in force today, and free goals.
func BuildDashboard(streaks []entity.GoalStreak, today civil.Date) Dashboard {
	res := Dashboard{
		TodayStreaks: []entity.GoalStreak{},
		GoalStreaks:  []entity.GoalStreak{},
		DoDonts:      []entity.GoalStreak{},
	}
	for _, gs := range streaks {
		res.Stats.CurrentStreak = max(res.Stats.CurrentStreak, gs.CurrentStreak)
		switch gs.Mode {
		case entity.ModeDaily:
			if gs.StartDate == nil || gs.EndDate == nil {
				continue
			}
			if today.Before(*gs.StartDate) || today.After(*gs.EndDate) {
				continue
			}
			res.TodayStreaks = append(res.TodayStreaks, gs)
			if gs.Complete() {
				res.Stats.CompletedToday++
			}
		case entity.ModeDoDont:
			if gs.StartDate != nil && today.Before(*gs.StartDate) {
				continue
			}
			if gs.EndDate != nil && today.After(*gs.EndDate) {
				continue
			}
			res.DoDonts = append(res.DoDonts, gs)
		case entity.ModeFree:
			res.GoalStreaks = append(res.GoalStreaks, gs)
		}
	}
	res.Stats.TotalToday = len(res.TodayStreaks)
	res.Stats.CompletionRate = percent.Of(res.Stats.CompletedToday, res.Stats.TotalToday)
	return res
}
