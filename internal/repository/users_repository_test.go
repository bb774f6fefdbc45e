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
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "password_hash", "created_at"}

func storedUser() entity.User {
	return entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
		CreatedAt:    time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func userRow(u entity.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).AddRow(u.ID, u.Name, u.PasswordHash, u.CreatedAt)
}

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepoWithConn(conn)
	ctx := context.Background()
	user := storedUser()
	query := regexp.QuoteMeta(`INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id, name, password_hash, created_at;`)

	testCases := []struct {
		Desc            string
		MockPrepareFunc func()
		ExpectedErr     error
	}{
		{
			Desc: "successfully created",
			MockPrepareFunc: func() {
				conn.ExpectQuery(query).WithArgs(user.Name, user.PasswordHash).WillReturnRows(userRow(user))
			},
		},
		{
			Desc: "unique violation error",
			MockPrepareFunc: func() {
				conn.ExpectQuery(query).WithArgs(user.Name, user.PasswordHash).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			ExpectedErr: errorvalues.ErrUserExists,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			res, err := repo.Create(ctx, user.Name, user.PasswordHash)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, *res)
		})
	}
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Name, user.PasswordHash).WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, user.Name, user.PasswordHash)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserExists)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepoWithConn(conn)
	ctx := context.Background()
	user := storedUser()
	byName := regexp.QuoteMeta(`SELECT id, name, password_hash, created_at FROM users WHERE name = $1;`)
	byID := regexp.QuoteMeta(`SELECT id, name, password_hash, created_at FROM users WHERE id = $1;`)

	testCases := []struct {
		Desc            string
		Find            func() (*entity.User, error)
		MockPrepareFunc func()
		ExpectedErr     error
	}{
		{
			Desc: "found by name",
			Find: func() (*entity.User, error) { return repo.FindByName(ctx, user.Name) },
			MockPrepareFunc: func() {
				conn.ExpectQuery(byName).WithArgs(user.Name).WillReturnRows(userRow(user))
			},
		},
		{
			Desc: "name not found",
			Find: func() (*entity.User, error) { return repo.FindByName(ctx, user.Name) },
			MockPrepareFunc: func() {
				conn.ExpectQuery(byName).WithArgs(user.Name).WillReturnError(pgx.ErrNoRows)
			},
			ExpectedErr: errorvalues.ErrUserNotFound,
		},
		{
			Desc: "found by id",
			Find: func() (*entity.User, error) { return repo.FindByID(ctx, user.ID) },
			MockPrepareFunc: func() {
				conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnRows(userRow(user))
			},
		},
		{
			Desc: "id not found",
			Find: func() (*entity.User, error) { return repo.FindByID(ctx, user.ID) },
			MockPrepareFunc: func() {
				conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnError(pgx.ErrNoRows)
			},
			ExpectedErr: errorvalues.ErrUserNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			res, err := tc.Find()
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, *res)
		})
	}
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnError(errors.New("db error"))
		_, err := repo.FindByID(ctx, user.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, uid))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, uid), errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Delete(ctx, uid))
	})
}
