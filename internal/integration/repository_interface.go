package integration

import "context"

type Repository interface {
	Upsert(ctx context.Context, conn *Connection) (*Connection, error)
	GetByProvider(ctx context.Context, userID int, provider string) (*Connection, error)
}
