package user

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"fittrack/internal/db"
)

var ErrUserNotFound = errors.New("user not found")

type SQLRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, name, email, passwordHash, role string) (*User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, role, created_at
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *SQLRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *SQLRepository) Username(ctx context.Context, userID int) (string, error) {
	var name string
	err := r.db.GetContext(ctx, &name, `SELECT name FROM users WHERE id = $1`, userID)
	if err != nil {
		return "", err
	}
	return name, nil
}
