package repository

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/pkg/entity"
)

type HabitLogsRepository struct {
	conn PgConnection
}

func NewHabitLogsRepoWithConn(conn PgConnection) *HabitLogsRepository {
	ping(conn, "habitLogsRepo")
	return &HabitLogsRepository{
		conn: conn,
	}
}

// A single statement, so two toggles racing on one day can't both insert.
const toggleLogQuery = `INSERT INTO habit_logs (habit_id, user_id, date, completed)
	VALUES ($1, $2, $3, COALESCE($4::boolean, TRUE))
	ON CONFLICT (habit_id, date) DO UPDATE SET completed = COALESCE($4::boolean, NOT habit_logs.completed)
	RETURNING id, completed, created_at;`

func (logsRepo *HabitLogsRepository) Toggle(ctx context.Context, entry *entity.HabitLogEntry, completed *bool) (*entity.HabitLogEntry, error) {
	res := *entry
	var set any
	if completed != nil {
		set = *completed
	}
	row := logsRepo.conn.QueryRow(ctx, toggleLogQuery,
		entry.HabitID,
		entry.UserID,
		dateArg(entry.Date),
		set,
	)
	if err := row.Scan(&res.ID, &res.Completed, &res.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrHabitNotFound
			}
		}
		return nil, errors.New("toggling habit log error: " + err.Error())
	}
	return &res, nil
}

func (logsRepo *HabitLogsRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to civil.Date) ([]entity.HabitLogEntry, error) {
	rows, err := logsRepo.conn.Query(
		ctx,
		`SELECT id, habit_id, user_id, date, completed, created_at FROM habit_logs WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date;`,
		uid,
		dateArg(from),
		dateArg(to),
	)
	if err != nil {
		return nil, errors.New("getting habit logs for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.HabitLogEntry, 0)
	for rows.Next() {
		var (
			entry entity.HabitLogEntry
			date  time.Time
		)
		err = rows.Scan(&entry.ID, &entry.HabitID, &entry.UserID, &date, &entry.Completed, &entry.CreatedAt)
		if err != nil {
			return nil, errors.New("habit log row parsing error: " + err.Error())
		}
		entry.Date = civil.DateOf(date)
		result = append(result, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected habit log rows error: " + err.Error())
	}
	return result, nil
}
