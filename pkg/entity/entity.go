package entity

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// StreakMode decides how check-ins on a goal streak are scheduled.
type StreakMode string

const (
	// Bound to [StartDate, EndDate], one check-in per calendar day.
	ModeDaily StreakMode = "daily"
	// No schedule, repeated check-ins on one day are allowed.
	ModeFree StreakMode = "free"
	// Standing daily rule, checked in like ModeDaily without a fixed end.
	ModeDoDont StreakMode = "do_dont"
)

func (m StreakMode) Valid() bool {
	switch m {
	case ModeDaily, ModeFree, ModeDoDont:
		return true
	}
	return false
}

type GoalStreak struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"user_id"`
	Title           string      `json:"title"`
	Subtitle        string      `json:"subtitle"`
	Icon            string      `json:"icon"`
	Color           string      `json:"color"`
	RewardTitle     *string     `json:"reward_title"`
	Mode            StreakMode  `json:"mode"`
	TargetDays      int         `json:"target_days"`
	CurrentStreak   int         `json:"current_streak"`
	LongestStreak   int         `json:"longest_streak"`
	StartDate       *civil.Date `json:"start_date"`
	EndDate         *civil.Date `json:"end_date"`
	LastCheckinDate *civil.Date `json:"last_checkin_date"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Complete reports whether the streak reached its target.
func (gs *GoalStreak) Complete() bool {
	return gs.CurrentStreak >= gs.TargetDays
}

type HabitType string

const (
	HabitPositive HabitType = "positive"
	HabitNegative HabitType = "negative"
)

func (t HabitType) Valid() bool {
	return t == HabitPositive || t == HabitNegative
}

type Habit struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Title       string    `json:"title"`
	Description string    `json:"desc"`
	Icon        string    `json:"icon"`
	Type        HabitType `json:"type"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// HabitLogEntry is unique per (HabitID, Date).
type HabitLogEntry struct {
	ID        uuid.UUID  `json:"id"`
	HabitID   uuid.UUID  `json:"habit_id"`
	UserID    uuid.UUID  `json:"user_id"`
	Date      civil.Date `json:"date"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
}

type Profile struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
	// Level is a cached value, always derivable from XP.
	Level     int       `json:"level"`
	XP        int       `json:"xp"`
	CreatedAt time.Time `json:"created_at"`
}

type Achievement struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon"`
	Description string     `json:"description"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at"`
}
