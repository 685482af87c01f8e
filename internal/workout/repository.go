package workout

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type SQLRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, w *Workout) (*Workout, error) {
	created := &Workout{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO workouts (user_id, type, duration_minutes, intensity, notes, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, type, duration_minutes, intensity, notes, mood_insight, date, created_at
	`, w.UserID, w.Type, w.DurationMinutes, w.Intensity, w.Notes, w.Date).StructScan(created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID, limit, offset int) ([]Workout, error) {
	if limit <= 0 {
		limit = 50
	}
	workouts := []Workout{}
	err := r.db.SelectContext(ctx, &workouts, `
		SELECT id, user_id, type, duration_minutes, intensity, notes, mood_insight, date, created_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	return workouts, err
}

func (r *SQLRepository) GetByID(ctx context.Context, id int) (*Workout, error) {
	w := &Workout{}
	err := r.db.GetContext(ctx, w, `
		SELECT id, user_id, type, duration_minutes, intensity, notes, mood_insight, date, created_at
		FROM workouts
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *SQLRepository) Delete(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM workouts
		WHERE id = $1
		  AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *SQLRepository) SetMoodInsight(ctx context.Context, id int, insight string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE workouts
		SET mood_insight = $2
		WHERE id = $1
	`, id, insight)
	return err
}

func (r *SQLRepository) CountSince(ctx context.Context, userID int, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM workouts
		WHERE user_id = $1
		  AND date >= $2
	`, userID, since)
	return count, err
}
