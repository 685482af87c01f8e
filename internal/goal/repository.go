package goal

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrGoalNotFound = errors.New("goal not found")

type SQLRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, g *Goal) (*Goal, error) {
	created := &Goal{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO goals (user_id, title, description, target_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, description, target_date, completed, created_at
	`, g.UserID, g.Title, g.Description, g.TargetDate).StructScan(created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID int) ([]Goal, error) {
	goals := []Goal{}
	err := r.db.SelectContext(ctx, &goals, `
		SELECT id, user_id, title, description, target_date, completed, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY completed ASC, created_at DESC
	`, userID)
	return goals, err
}

func (r *SQLRepository) Complete(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE goals
		SET completed = TRUE
		WHERE id = $1
		  AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(res.RowsAffected())
}

func (r *SQLRepository) Delete(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM goals
		WHERE id = $1
		  AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(res.RowsAffected())
}

func (r *SQLRepository) CountOpen(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM goals
		WHERE user_id = $1
		  AND completed = FALSE
	`, userID)
	return count, err
}

func requireAffected(affected int64, err error) error {
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
