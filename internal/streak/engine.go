// Package streak holds the check-in state machine of a goal streak.
//
// Functions take the streak by value and return the next state; nothing here
// reads the clock or touches storage. Persisting the result atomically is the
// caller's job (see repository.GoalStreaksRepository.UpdateProgress).
package streak

import (
	"fmt"

	"cloud.google.com/go/civil"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/pkg/entity"
)

type Action string

const (
	Increment Action = "increment"
	Decrement Action = "decrement"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case Increment, Decrement:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", errorvalues.ErrUnknownAction, s)
}

// OncePerDay reports whether the mode allows a single increment per calendar day.
func OncePerDay(mode entity.StreakMode) (bool, error) {
	switch mode {
	case entity.ModeDaily, entity.ModeDoDont:
		return true, nil
	case entity.ModeFree:
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", errorvalues.ErrUnknownMode, mode)
}

// ApplyCheckin moves the streak one step. A second increment on the same day
// of a daily or do/don't streak fails with ErrAlreadyCheckedIn and leaves the
// state untouched.
func ApplyCheckin(gs entity.GoalStreak, action Action, today civil.Date) (entity.GoalStreak, error) {
	once, err := OncePerDay(gs.Mode)
	if err != nil {
		return gs, err
	}
	switch action {
	case Increment:
		if once && checkedInOn(gs, today) {
			return gs, errorvalues.ErrAlreadyCheckedIn
		}
		gs.CurrentStreak = clamp(gs.CurrentStreak+1, gs.TargetDays)
		d := today
		gs.LastCheckinDate = &d
	case Decrement:
		gs.CurrentStreak = clamp(gs.CurrentStreak-1, gs.TargetDays)
		// Only today's check-in is undone, earlier dates stay as recorded.
		if checkedInOn(gs, today) {
			gs.LastCheckinDate = nil
		}
	default:
		return gs, fmt.Errorf("%w: %q", errorvalues.ErrUnknownAction, action)
	}
	gs.LongestStreak = max(gs.LongestStreak, gs.CurrentStreak)
	return gs, nil
}

// SetCurrentStreak is a manual correction. It bypasses the once-per-day rule
// and keeps LastCheckinDate as is.
func SetCurrentStreak(gs entity.GoalStreak, value int) entity.GoalStreak {
	gs.CurrentStreak = clamp(value, gs.TargetDays)
	gs.LongestStreak = max(gs.LongestStreak, gs.CurrentStreak)
	return gs
}

func checkedInOn(gs entity.GoalStreak, day civil.Date) bool {
	return gs.LastCheckinDate != nil && *gs.LastCheckinDate == day
}

func clamp(v, target int) int {
	return min(max(v, 0), max(target, 0))
}
