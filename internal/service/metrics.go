package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var checkinsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lifeflow",
	Subsystem: "streaks",
	Name:      "checkins_total",
	Help:      "Goal streak transitions stored, by mode and action.",
}, []string{"mode", "action"})

var streakConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "lifeflow",
	Subsystem: "streaks",
	Name:      "update_conflicts_total",
	Help:      "Progress updates lost to a concurrent writer and retried.",
})

var xpAwardedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "lifeflow",
	Subsystem: "progression",
	Name:      "xp_awarded_total",
	Help:      "Experience points granted to all users.",
})

var achievementsUnlockedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lifeflow",
	Subsystem: "progression",
	Name:      "achievements_unlocked_total",
	Help:      "Achievements unlocked, by name.",
}, []string{"name"})

var habitLogsToggledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lifeflow",
	Subsystem: "habits",
	Name:      "logs_toggled_total",
	Help:      "Habit log toggles, by resulting state.",
}, []string{"completed"})
