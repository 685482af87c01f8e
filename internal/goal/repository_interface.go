package goal

import "context"

type Repository interface {
	Create(ctx context.Context, g *Goal) (*Goal, error)
	ListByUser(ctx context.Context, userID int) ([]Goal, error)
	Complete(ctx context.Context, userID, id int) error
	Delete(ctx context.Context, userID, id int) error
	// CountOpen backs the per-tier active goal gate. Completed goals never
	// count against the limit.
	CountOpen(ctx context.Context, userID int) (int, error)
}
