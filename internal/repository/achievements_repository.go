package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/limbo/lifeflow/pkg/entity"
)

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	ping(conn, "achievementsRepo")
	return &AchievementsRepository{
		conn: conn,
	}
}

func (ar *AchievementsRepository) Seed(ctx context.Context, uid uuid.UUID, achievements []entity.Achievement) error {
	tx, err := ar.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning seed transaction error: " + err.Error())
	}
	for _, a := range achievements {
		_, err = tx.Exec(ctx, `INSERT INTO achievements (user_id, name, icon, description) VALUES ($1, $2, $3, $4) ON CONFLICT (user_id, name) DO NOTHING;`,
			uid, a.Name, a.Icon, a.Description,
		)
		if err != nil {
			tx.Rollback(ctx)
			return errors.New("seeding achievement " + a.Name + " error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing seed transaction error: " + err.Error())
	}
	return nil
}

func (ar *AchievementsRepository) ListByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Achievement, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, user_id, name, icon, description, unlocked, unlocked_at 
		FROM achievements WHERE user_id = $1 ORDER BY unlocked DESC, unlocked_at DESC NULLS LAST, name;`, uid)
	if err != nil {
		return nil, errors.New("listing achievements error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Achievement, 0)
	for rows.Next() {
		var a entity.Achievement
		if err = rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Icon, &a.Description, &a.Unlocked, &a.UnlockedAt); err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected achievement rows error: " + err.Error())
	}
	return result, nil
}

func (ar *AchievementsRepository) Unlock(ctx context.Context, uid uuid.UUID, name string) (bool, error) {
	ct, err := ar.conn.Exec(ctx, `UPDATE achievements SET unlocked = TRUE, unlocked_at = NOW() WHERE user_id = $1 AND name = $2 AND NOT unlocked;`, uid, name)
	if err != nil {
		return false, errors.New("unlocking achievement error: " + err.Error())
	}
	return ct.RowsAffected() == 1, nil
}
