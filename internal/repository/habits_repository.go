package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/pkg/entity"
)

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	ping(conn, "habitsRepo")
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (user_id, title, description, icon, type, category) 
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		habit.UserID,
		habit.Title,
		habit.Description,
		habit.Icon,
		string(habit.Type),
		habit.Category,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.Nil, errorvalues.ErrUserHasHabit
			// FK violation
			case "23503":
				return uuid.Nil, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.Nil, errors.New("creating habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var (
		habit     entity.Habit
		habitType string
	)
	habit.ID = id
	row := hr.conn.QueryRow(ctx, `SELECT user_id, title, description, icon, type, category, created_at FROM habits WHERE id = $1;`, id)
	if err := row.Scan(&habit.UserID, &habit.Title, &habit.Description, &habit.Icon, &habitType, &habit.Category, &habit.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	habit.Type = entity.HabitType(habitType)
	return &habit, nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT id, user_id, title, description, icon, type, category, created_at 
		FROM habits WHERE user_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			h         entity.Habit
			habitType string
		)
		err = rows.Scan(&h.ID, &h.UserID, &h.Title, &h.Description, &h.Icon, &habitType, &h.Category, &h.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		h.Type = entity.HabitType(habitType)
		habits = append(habits, &h)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	var count int
	row := hr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM habits WHERE user_id = $1;`, uid)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting habits error: " + err.Error())
	}
	return count, nil
}

func (hr *HabitsRepository) TypesByUserID(ctx context.Context, uid uuid.UUID) (map[uuid.UUID]entity.HabitType, error) {
	rows, err := hr.conn.Query(ctx, `SELECT id, type FROM habits WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("getting habit types error: " + err.Error())
	}
	defer rows.Close()
	types := make(map[uuid.UUID]entity.HabitType)
	for rows.Next() {
		var (
			id        uuid.UUID
			habitType string
		)
		if err = rows.Scan(&id, &habitType); err != nil {
			return nil, errors.New("unmarshalling habit type error: " + err.Error())
		}
		types[id] = entity.HabitType(habitType)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return types, nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}
