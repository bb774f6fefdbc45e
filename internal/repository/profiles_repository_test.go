package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/leveling"
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepoWithConn(mock)
	profile := entity.Profile{ID: userID, DisplayName: "test_name", Level: 1}
	query := regexp.QuoteMeta(`INSERT INTO profiles (id, display_name, avatar_url, level, xp) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING;`)
	args := []any{profile.ID, profile.DisplayName, profile.AvatarURL, 1, 0}
	ctx := context.Background()
	mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Create(ctx, &profile))
	mock.ExpectExec(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
	assert.ErrorIs(t, repo.Create(ctx, &profile), errorvalues.ErrUserNotFound)
}

func TestGetProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepoWithConn(mock)
	avatar := "https://example.com/a.png"
	profile := entity.Profile{ID: userID, DisplayName: "test_name", AvatarURL: &avatar, Level: 3, XP: 1350, CreatedAt: time.Now()}
	query := regexp.QuoteMeta(`SELECT id, display_name, avatar_url, level, xp, created_at FROM profiles WHERE id = $1;`)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(
			pgxmock.NewRows([]string{"id", "display_name", "avatar_url", "level", "xp", "created_at"}).
				AddRow(profile.ID, profile.DisplayName, profile.AvatarURL, profile.Level, profile.XP, profile.CreatedAt),
		)
		res, err := repo.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, profile, *res)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
}

func TestAddXP(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE profiles SET xp = xp + $1, updated_at = NOW() WHERE id = $2 RETURNING xp;`)
	ctx := context.Background()
	t.Run("added", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(60, userID).WillReturnRows(pgxmock.NewRows([]string{"xp"}).AddRow(560))
		xp, err := repo.AddXP(ctx, userID, 60)
		require.NoError(t, err)
		assert.Equal(t, 560, xp)
	})
	t.Run("no profile", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(10, userID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.AddXP(ctx, userID, 10)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(10, userID).WillReturnError(errors.New("db error"))
		_, err := repo.AddXP(ctx, userID, 10)
		assert.Error(t, err)
	})
}

func TestSetLevel(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE profiles SET level = $1, updated_at = NOW() WHERE id = $2;`)
	mock.ExpectExec(query).WithArgs(2, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.SetLevel(context.Background(), userID, 2))
	mock.ExpectExec(query).WithArgs(2, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.SetLevel(context.Background(), userID, 2), errorvalues.ErrProfileNotFound)
}

func TestSeedAchievements(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewAchievementsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO achievements (user_id, name, icon, description) VALUES ($1, $2, $3, $4) ON CONFLICT (user_id, name) DO NOTHING;`)
	achievements := []entity.Achievement{
		{Name: leveling.Achievements[0].Name, Icon: leveling.Achievements[0].Icon, Description: leveling.Achievements[0].Description},
		{Name: leveling.Achievements[1].Name, Icon: leveling.Achievements[1].Icon, Description: leveling.Achievements[1].Description},
	}
	ctx := context.Background()
	t.Run("seeded", func(t *testing.T) {
		mock.ExpectBegin()
		for _, a := range achievements {
			mock.ExpectExec(query).WithArgs(userID, a.Name, a.Icon, a.Description).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
		mock.ExpectCommit()
		assert.NoError(t, repo.Seed(ctx, userID, achievements))
	})
	t.Run("rolled back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).WithArgs(userID, achievements[0].Name, achievements[0].Icon, achievements[0].Description).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		assert.Error(t, repo.Seed(ctx, userID, achievements))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAchievements(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewAchievementsRepoWithConn(mock)
	unlockedAt := time.Now()
	achievements := []entity.Achievement{
		{ID: uuid.New(), UserID: userID, Name: "First Step", Icon: "flag", Description: "Complete your first check-in", Unlocked: true, UnlockedAt: &unlockedAt},
		{ID: uuid.New(), UserID: userID, Name: "3-Day Spark", Icon: "bolt", Description: "Maintain a 3-day streak"},
	}
	rows := pgxmock.NewRows([]string{"id", "user_id", "name", "icon", "description", "unlocked", "unlocked_at"})
	for _, a := range achievements {
		rows.AddRow(a.ID, a.UserID, a.Name, a.Icon, a.Description, a.Unlocked, a.UnlockedAt)
	}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM achievements WHERE user_id = $1`)).WithArgs(userID).WillReturnRows(rows)
	res, err := repo.ListByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, achievements, res)
}

func TestUnlockAchievement(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewAchievementsRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE achievements SET unlocked = TRUE, unlocked_at = NOW() WHERE user_id = $1 AND name = $2 AND NOT unlocked;`)
	ctx := context.Background()
	mock.ExpectExec(query).WithArgs(userID, "Week Warrior").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.Unlock(ctx, userID, "Week Warrior")
	require.NoError(t, err)
	assert.True(t, ok)
	mock.ExpectExec(query).WithArgs(userID, "Week Warrior").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	ok, err = repo.Unlock(ctx, userID, "Week Warrior")
	require.NoError(t, err)
	assert.False(t, ok)
}
