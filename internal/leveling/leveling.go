// Package leveling maps experience points to levels and streak lengths to
// mystery-box reward tiers.
package leveling

import (
	"github.com/limbo/lifeflow/internal/percent"
)

const XPPerLevel = 500

// XP awards
const (
	XPCheckin     = 10
	XPStreak7     = 50
	XPStreak30    = 200
	XPAchievement = 100
)

// Level starts at 1 and grows every XPPerLevel points.
func Level(xp int) int {
	return max(xp, 0)/XPPerLevel + 1
}

type Progress struct {
	Current    int `json:"current"`
	Target     int `json:"target"`
	Percentage int `json:"percentage"`
}

// LevelProgress is the XP earned inside the current level.
func LevelProgress(xp int) Progress {
	current := max(xp, 0) % XPPerLevel
	return Progress{
		Current:    current,
		Target:     XPPerLevel,
		Percentage: percent.Of(current, XPPerLevel),
	}
}

// CheckinXP is the XP earned when a check-in moves a streak from prev to next.
// Undoing a check-in earns nothing and takes nothing back.
func CheckinXP(prev, next int) int {
	if next <= prev {
		return 0
	}
	xp := XPCheckin
	if prev < 7 && next >= 7 {
		xp += XPStreak7
	}
	if prev < 30 && next >= 30 {
		xp += XPStreak30
	}
	return xp
}
