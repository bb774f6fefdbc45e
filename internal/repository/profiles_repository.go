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

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	ping(conn, "profilesRepo")
	return &ProfilesRepository{
		conn: conn,
	}
}

// Create is a no-op for a user who already has a profile.
func (pr *ProfilesRepository) Create(ctx context.Context, profile *entity.Profile) error {
	_, err := pr.conn.Exec(ctx, `INSERT INTO profiles (id, display_name, avatar_url, level, xp) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING;`,
		profile.ID,
		profile.DisplayName,
		profile.AvatarURL,
		profile.Level,
		profile.XP,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating profile db error: " + err.Error())
	}
	return nil
}

func (pr *ProfilesRepository) GetByID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	var p entity.Profile
	row := pr.conn.QueryRow(ctx, `SELECT id, display_name, avatar_url, level, xp, created_at FROM profiles WHERE id = $1;`, uid)
	if err := row.Scan(&p.ID, &p.DisplayName, &p.AvatarURL, &p.Level, &p.XP, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile error: " + err.Error())
	}
	return &p, nil
}

func (pr *ProfilesRepository) AddXP(ctx context.Context, uid uuid.UUID, amount int) (int, error) {
	var xp int
	row := pr.conn.QueryRow(ctx, `UPDATE profiles SET xp = xp + $1, updated_at = NOW() WHERE id = $2 RETURNING xp;`, amount, uid)
	if err := row.Scan(&xp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrProfileNotFound
		}
		return 0, errors.New("adding xp error: " + err.Error())
	}
	return xp, nil
}

func (pr *ProfilesRepository) SetLevel(ctx context.Context, uid uuid.UUID, level int) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE profiles SET level = $1, updated_at = NOW() WHERE id = $2;`, level, uid)
	if err != nil {
		return errors.New("setting level error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}
