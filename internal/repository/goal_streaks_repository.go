package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/pkg/entity"
)

type GoalStreaksRepository struct {
	conn PgConnection
}

func NewGoalStreaksRepoWithConn(conn PgConnection) *GoalStreaksRepository {
	ping(conn, "goalStreaksRepo")
	return &GoalStreaksRepository{
		conn: conn,
	}
}

const goalStreakColumns = `id, user_id, title, subtitle, icon, color, reward_title, mode, target_days, ` +
	`current_streak, longest_streak, start_date, end_date, last_checkin_date, created_at`

func scanGoalStreak(row pgx.Row) (*entity.GoalStreak, error) {
	var (
		gs                      entity.GoalStreak
		mode                    string
		start, end, lastCheckin *time.Time
	)
	err := row.Scan(&gs.ID, &gs.UserID, &gs.Title, &gs.Subtitle, &gs.Icon, &gs.Color, &gs.RewardTitle, &mode, &gs.TargetDays,
		&gs.CurrentStreak, &gs.LongestStreak, &start, &end, &lastCheckin, &gs.CreatedAt)
	if err != nil {
		return nil, err
	}
	gs.Mode = entity.StreakMode(mode)
	gs.StartDate = nullDate(start)
	gs.EndDate = nullDate(end)
	gs.LastCheckinDate = nullDate(lastCheckin)
	return &gs, nil
}

func (gsr *GoalStreaksRepository) Create(ctx context.Context, gs *entity.GoalStreak) (*entity.GoalStreak, error) {
	row := gsr.conn.QueryRow(ctx, `INSERT INTO goal_streaks (user_id, title, subtitle, icon, color, reward_title, mode, target_days, start_date, end_date) 
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING `+goalStreakColumns+`;`,
		gs.UserID,
		gs.Title,
		gs.Subtitle,
		gs.Icon,
		gs.Color,
		gs.RewardTitle,
		string(gs.Mode),
		gs.TargetDays,
		nullDateArg(gs.StartDate),
		nullDateArg(gs.EndDate),
	)
	created, err := scanGoalStreak(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrOwnerNotFound
			}
		}
		return nil, errors.New("creating goal streak db error: " + err.Error())
	}
	return created, nil
}

func (gsr *GoalStreaksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.GoalStreak, error) {
	row := gsr.conn.QueryRow(ctx, `SELECT `+goalStreakColumns+` FROM goal_streaks WHERE id = $1;`, id)
	gs, err := scanGoalStreak(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStreakNotFound
		}
		return nil, errors.New("getting goal streak by id error: " + err.Error())
	}
	return gs, nil
}

func (gsr *GoalStreaksRepository) list(ctx context.Context, query string, args ...any) ([]entity.GoalStreak, error) {
	rows, err := gsr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing goal streaks error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.GoalStreak, 0)
	for rows.Next() {
		gs, err := scanGoalStreak(rows)
		if err != nil {
			return nil, errors.New("goal streak row parsing error: " + err.Error())
		}
		result = append(result, *gs)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected goal streak rows error: " + err.Error())
	}
	return result, nil
}

func (gsr *GoalStreaksRepository) ListByUserID(ctx context.Context, uid uuid.UUID) ([]entity.GoalStreak, error) {
	return gsr.list(ctx, `SELECT `+goalStreakColumns+` FROM goal_streaks WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
}

func (gsr *GoalStreaksRepository) ListByMode(ctx context.Context, uid uuid.UUID, mode entity.StreakMode) ([]entity.GoalStreak, error) {
	return gsr.list(ctx, `SELECT `+goalStreakColumns+` FROM goal_streaks WHERE user_id = $1 AND mode = $2 ORDER BY created_at DESC;`, uid, string(mode))
}

func (gsr *GoalStreaksRepository) ListLongest(ctx context.Context, uid uuid.UUID, limit int) ([]entity.GoalStreak, error) {
	return gsr.list(ctx, `SELECT `+goalStreakColumns+` FROM goal_streaks WHERE user_id = $1 ORDER BY longest_streak DESC, created_at DESC LIMIT $2;`, uid, limit)
}

func (gsr *GoalStreaksRepository) UpdateDetails(ctx context.Context, gs *entity.GoalStreak) error {
	ct, err := gsr.conn.Exec(ctx, `UPDATE goal_streaks SET title = $1, subtitle = $2, icon = $3, color = $4, reward_title = $5, target_days = $6 WHERE id = $7;`,
		gs.Title, gs.Subtitle, gs.Icon, gs.Color, gs.RewardTitle, gs.TargetDays, gs.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Check violation, target below current streak
			case "23514":
				return errorvalues.ErrTargetBelowStreak
			}
		}
		return errors.New("updating goal streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStreakNotFound
	}
	return nil
}

const updateProgressQuery = `UPDATE goal_streaks SET current_streak = $1, longest_streak = $2, last_checkin_date = $3 ` +
	`WHERE id = $4 AND current_streak = $5 AND last_checkin_date IS NOT DISTINCT FROM $6::date;`

func (gsr *GoalStreaksRepository) UpdateProgress(ctx context.Context, prev, next *entity.GoalStreak) error {
	ct, err := gsr.conn.Exec(ctx, updateProgressQuery,
		next.CurrentStreak,
		next.LongestStreak,
		nullDateArg(next.LastCheckinDate),
		prev.ID,
		prev.CurrentStreak,
		nullDateArg(prev.LastCheckinDate),
	)
	if err != nil {
		return errors.New("updating goal streak progress error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStreakConflict
	}
	return nil
}

func (gsr *GoalStreaksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := gsr.conn.Exec(ctx, `DELETE FROM goal_streaks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting goal streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStreakNotFound
	}
	return nil
}
