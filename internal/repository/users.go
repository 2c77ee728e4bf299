package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lightbnb/lightbnb/internal/database"
	"github.com/lightbnb/lightbnb/internal/domain"
)

// NewUser is the payload for creating a user. Password must already be
// hashed; this layer never sees plaintext credentials.
type NewUser struct {
	Name     string
	Email    string
	Password string
}

// UserRepository reads and writes rows of the users table.
type UserRepository struct {
	db database.Querier
}

func NewUserRepository(db database.Querier) *UserRepository {
	return &UserRepository{db: db}
}

const getUserByEmailSQL = `
SELECT *
FROM users
WHERE users.email = $1
`

const getUserByIDSQL = `
SELECT *
FROM users
WHERE users.id = $1
`

const addUserSQL = `
INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING *
`

// GetByEmail returns the user with the given email, or (nil, nil) when no
// such user exists. Email is unique; if the constraint were ever violated,
// the first matching row wins.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	rows, err := r.db.Query(ctx, getUserByEmailSQL, email)
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.User])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("collecting user row: %w", err)
	}

	return &user, nil
}

// GetByID returns the user with the given id, or (nil, nil) when no such
// user exists.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	rows, err := r.db.Query(ctx, getUserByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.User])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("collecting user row: %w", err)
	}

	return &user, nil
}

// Create inserts a user and returns the stored row including its generated
// id. A duplicate email surfaces as a unique violation the caller can detect
// with sqlerr.ErrCode.
func (r *UserRepository) Create(ctx context.Context, u NewUser) (*domain.User, error) {
	rows, err := r.db.Query(ctx, addUserSQL, u.Name, u.Email, u.Password)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	return &user, nil
}
