package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightbnb/lightbnb/internal/sqlerr"
)

var userColumns = []string{"id", "name", "email", "password"}

func TestUserGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getUserByEmailSQL)).
		WithArgs("alice@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(int64(1), "Alice", "alice@example.com", "$2a$10$hash"))

	repo := NewUserRepository(mock)
	user, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)

	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByEmailNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getUserByEmailSQL)).
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns))

	repo := NewUserRepository(mock)
	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")

	// absent is not an error
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getUserByIDSQL)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(int64(1), "Alice", "alice@example.com", "$2a$10$hash"))

	repo := NewUserRepository(mock)
	user, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, user)
	assert.Equal(t, "Alice", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getUserByIDSQL)).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(userColumns))

	repo := NewUserRepository(mock)
	user, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(addUserSQL)).
		WithArgs("Alice", "alice@example.com", "$2a$10$hash").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(int64(5), "Alice", "alice@example.com", "$2a$10$hash"))

	repo := NewUserRepository(mock)
	user, err := repo.Create(context.Background(), NewUser{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "$2a$10$hash",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(addUserSQL)).
		WithArgs("Alice", "alice@example.com", "$2a$10$hash").
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			TableName:      "users",
			ConstraintName: "users_email_key",
		})

	repo := NewUserRepository(mock)
	user, err := repo.Create(context.Background(), NewUser{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "$2a$10$hash",
	})

	require.Error(t, err)
	assert.Nil(t, user)
	// callers can tell a duplicate from a dead database
	assert.Equal(t, sqlerr.UniqueViolation, sqlerr.ErrCode(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
