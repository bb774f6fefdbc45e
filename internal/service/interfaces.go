package service

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/limbo/lifeflow/internal/service UserServiceI,HabitsServiceI,HabitLogsServiceI,GoalStreaksServiceI,ProgressionServiceI

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/lifeflow/internal/activity"
	"github.com/limbo/lifeflow/internal/calendar"
	"github.com/limbo/lifeflow/internal/stats"
	"github.com/limbo/lifeflow/internal/streak"
	"github.com/limbo/lifeflow/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,username,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database and onboards
	// his profile. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type CreateHabitRequest struct {
	Title       string           `json:"title" validate:"required,max=200"`
	Description string           `json:"desc" validate:"max=1000"`
	Icon        string           `json:"icon" validate:"max=64"`
	Type        entity.HabitType `json:"type" validate:"omitempty,habit_type"`
	Category    string           `json:"category" validate:"max=64"`
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type ToggleLogRequest struct {
	HabitID uuid.UUID `json:"habit_id" validate:"required"`
	// Today when omitted
	Date *civil.Date `json:"date"`
	// Flips the stored value when omitted
	Completed *bool `json:"completed"`
}

type DayLogs struct {
	Date       civil.Date             `json:"date"`
	Logs       []entity.HabitLogEntry `json:"logs"`
	Completion stats.DailyCompletion  `json:"completion"`
}

type WeekSummary struct {
	Start civil.Date                  `json:"start"`
	End   civil.Date                  `json:"end"`
	Days  map[string]stats.DaySummary `json:"days"`
}

type ActivityHeatmap struct {
	Timeframe calendar.Timeframe `json:"timeframe"`
	Start     civil.Date         `json:"start"`
	End       civil.Date         `json:"end"`
	activity.Result
}

type HabitLogsServiceI interface {
	Toggle(ctx context.Context, uid uuid.UUID, req *ToggleLogRequest) (*entity.HabitLogEntry, error)
	// Logs of one date with the daily completion rate. Nil date means today
	DayLogs(ctx context.Context, uid uuid.UUID, date *civil.Date) (*DayLogs, error)
	// Summary of [start, end], or of the current week when both are nil
	Week(ctx context.Context, uid uuid.UUID, start, end *civil.Date) (*WeekSummary, error)
	MonthlyCompletion(ctx context.Context, uid uuid.UUID, date *civil.Date) (*stats.LogCompletion, error)
	DoVsDont(ctx context.Context, uid uuid.UUID, date *civil.Date) ([]stats.DoVsDont, error)
	Activity(ctx context.Context, uid uuid.UUID, tf calendar.Timeframe, date *civil.Date) (*ActivityHeatmap, error)
}

type CreateGoalStreakRequest struct {
	Title       string            `json:"title" validate:"required,max=200"`
	Subtitle    string            `json:"subtitle" validate:"max=500"`
	Icon        string            `json:"icon" validate:"max=64"`
	Color       string            `json:"color" validate:"max=32"`
	RewardTitle *string           `json:"reward_title" validate:"omitempty,max=200"`
	Mode        entity.StreakMode `json:"mode" validate:"required,streak_mode"`
	TargetDays  int               `json:"target_days" validate:"required,min=1,max=3650"`
	StartDate   *civil.Date       `json:"start_date"`
	EndDate     *civil.Date       `json:"end_date"`
}

// UpdateGoalStreakRequest changes only the fields that are set.
type UpdateGoalStreakRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Subtitle    *string `json:"subtitle" validate:"omitempty,max=500"`
	Icon        *string `json:"icon" validate:"omitempty,max=64"`
	Color       *string `json:"color" validate:"omitempty,max=32"`
	RewardTitle *string `json:"reward_title" validate:"omitempty,max=200"`
	TargetDays  *int    `json:"target_days" validate:"omitempty,min=1,max=3650"`
}

type CheckinResult struct {
	GoalStreak entity.GoalStreak `json:"goal_streak"`
	// Nil when nothing was earned
	Award *Award `json:"award,omitempty"`
}

type DashboardView struct {
	Date civil.Date         `json:"date"`
	Week []calendar.WeekDay `json:"week"`
	stats.Dashboard
}

type GoalStreaksServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *CreateGoalStreakRequest) (*entity.GoalStreak, error)
	// Lists user's streaks. Empty mode lists all of them
	List(ctx context.Context, uid uuid.UUID, mode entity.StreakMode) ([]entity.GoalStreak, error)
	Checkin(ctx context.Context, id, uid uuid.UUID, action streak.Action) (*CheckinResult, error)
	SetStreak(ctx context.Context, id, uid uuid.UUID, value int) (*CheckinResult, error)
	Update(ctx context.Context, id, uid uuid.UUID, req *UpdateGoalStreakRequest) (*entity.GoalStreak, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
	Dashboard(ctx context.Context, uid uuid.UUID, date *civil.Date) (*DashboardView, error)
	Insights(ctx context.Context, uid uuid.UUID, date *civil.Date) (*stats.Insights, error)
	RangeStats(ctx context.Context, uid uuid.UUID, start, end civil.Date) (*stats.RangeStats, error)
	Longest(ctx context.Context, uid uuid.UUID) ([]entity.GoalStreak, error)
}

type Award struct {
	XP       int      `json:"xp"`
	TotalXP  int      `json:"total_xp"`
	Level    int      `json:"level"`
	Unlocked []string `json:"unlocked"`
}

// Awarder grants XP and unlocks achievements by name.
type Awarder interface {
	Award(ctx context.Context, uid uuid.UUID, xp int, achievements ...string) (*Award, error)
}

type ProgressionServiceI interface {
	Awarder
	// Creates profile and locked achievements for a new user
	Onboard(ctx context.Context, user *entity.User) error
	View(ctx context.Context, uid uuid.UUID) (*ProfileView, error)
	Achievements(ctx context.Context, uid uuid.UUID) ([]entity.Achievement, error)
}
