package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrOwnerNotFound    = errors.New("owner of the record doesn't exist")
	ErrWrongOwner       = errors.New("record belongs to another user")
)

// Habits and their daily logs
var (
	ErrHabitNotFound       = errors.New("habit doesn't exist")
	ErrUserHasHabit        = errors.New("user already has habit with such title")
	ErrCheckDateNotAllowed = errors.New("can't log a habit on a future date")
)

// Goal streaks and progression
var (
	ErrStreakNotFound    = errors.New("goal streak doesn't exist")
	ErrProfileNotFound   = errors.New("profile doesn't exist")
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrStreakConflict    = errors.New("goal streak was changed concurrently")
	ErrUnknownMode       = errors.New("unknown goal streak mode")
	ErrUnknownAction     = errors.New("unknown check-in action")
	ErrTargetBelowStreak = errors.New("target days can't be lower than current streak")
)

// Calendar input
var (
	ErrInvalidRange     = errors.New("invalid date range")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTimeframe = errors.New("invalid timeframe")
)
