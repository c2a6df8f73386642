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
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/internal/repository"
	"github.com/karam/musabaqa/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := entity.User{
		Email:        "karam@example.com",
		Name:         "Karam",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3);`)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Email, user.Name, user.PasswordHash).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &user)
		assert.NoError(t, err)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Email, user.Name, user.PasswordHash).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Email, user.Name, user.PasswordHash).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user)
		assert.Error(t, err)
	})
}

func TestFindUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Email:        "karam@example.com",
		Name:         "Karam",
		PasswordHash: "test_password_hash",
		CreatedAt:    time.Now(),
	}
	columns := []string{"id", "email", "name", "password_hash", "created_at"}
	byEmail := regexp.QuoteMeta(`SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1;`)
	byID := regexp.QuoteMeta(`SELECT id, email, name, password_hash, created_at FROM users WHERE id = $1;`)
	t.Run("found by email", func(t *testing.T) {
		conn.ExpectQuery(byEmail).
			WithArgs(user.Email).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt))
		result, err := repo.FindByEmail(ctx, user.Email)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found by email", func(t *testing.T) {
		conn.ExpectQuery(byEmail).
			WithArgs(user.Email).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("found by id", func(t *testing.T) {
		conn.ExpectQuery(byID).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found by id", func(t *testing.T) {
		conn.ExpectQuery(byID).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(byEmail).
			WithArgs(user.Email).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.Error(t, err)
	})
}
