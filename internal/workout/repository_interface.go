package workout

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, w *Workout) (*Workout, error)
	ListByUser(ctx context.Context, userID, limit, offset int) ([]Workout, error)
	GetByID(ctx context.Context, id int) (*Workout, error)
	Delete(ctx context.Context, userID, id int) error
	SetMoodInsight(ctx context.Context, id int, insight string) error
	// CountSince backs the rolling-window workout gate.
	CountSince(ctx context.Context, userID int, since time.Time) (int, error)
}
