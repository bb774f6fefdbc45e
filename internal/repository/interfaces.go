package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/lifeflow/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/limbo/lifeflow/internal/repository UsersRepositoryI,HabitsRepositoryI,HabitLogsRepositoryI,GoalStreaksRepositoryI,ProfilesRepositoryI,AchievementsRepositoryI

type UsersRepositoryI interface {
	// Stores a new user and returns the row as the database filled it
	Create(ctx context.Context, name, passwordHash string) (*entity.User, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user together with everything they own
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit in database. Title, UserID and Type are necessary
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid, oldest first. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Counts habits owned by user
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
	// Maps every habit of the user to its type
	TypesByUserID(ctx context.Context, uid uuid.UUID) (map[uuid.UUID]entity.HabitType, error)
	// Deletes habit with id together with its logs
	Delete(ctx context.Context, id uuid.UUID) error
}

type HabitLogsRepositoryI interface {
	// Flips the log of entry.HabitID on entry.Date, creating it when missing.
	// A non-nil completed is stored as is instead of flipping.
	Toggle(ctx context.Context, entry *entity.HabitLogEntry, completed *bool) (*entity.HabitLogEntry, error)
	// Lists logs of the user with from <= date <= to
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to civil.Date) ([]entity.HabitLogEntry, error)
}

type GoalStreaksRepositoryI interface {
	// Creates goal streak and returns it as stored
	Create(ctx context.Context, gs *entity.GoalStreak) (*entity.GoalStreak, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.GoalStreak, error)
	// Lists streaks of the user, newest first
	ListByUserID(ctx context.Context, uid uuid.UUID) ([]entity.GoalStreak, error)
	// Lists streaks of the user in given mode, newest first
	ListByMode(ctx context.Context, uid uuid.UUID, mode entity.StreakMode) ([]entity.GoalStreak, error)
	// Lists streaks with the greatest longest_streak
	ListLongest(ctx context.Context, uid uuid.UUID, limit int) ([]entity.GoalStreak, error)
	// Updates presentation fields and target. Progress fields are left untouched
	UpdateDetails(ctx context.Context, gs *entity.GoalStreak) error
	// Stores progress of next only if the row still holds prev's progress.
	// Returns ErrStreakConflict otherwise
	UpdateProgress(ctx context.Context, prev, next *entity.GoalStreak) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfilesRepositoryI interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Adds amount to profile's xp and returns the new total
	AddXP(ctx context.Context, uid uuid.UUID, amount int) (int, error)
	SetLevel(ctx context.Context, uid uuid.UUID, level int) error
}

type AchievementsRepositoryI interface {
	// Inserts locked achievements for user, skipping ones he already has
	Seed(ctx context.Context, uid uuid.UUID, achievements []entity.Achievement) error
	// Lists user's achievements, unlocked first
	ListByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Achievement, error)
	// Unlocks achievement by name. Reports false if it was already unlocked or doesn't exist
	Unlock(ctx context.Context, uid uuid.UUID, name string) (bool, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
