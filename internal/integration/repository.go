package integration

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotConnected = errors.New("provider not connected")

type SQLRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// Upsert keeps one connection per (user, provider). Reconnecting refreshes
// the card number but preserves the original connection date.
func (r *SQLRepository) Upsert(ctx context.Context, conn *Connection) (*Connection, error) {
	created := &Connection{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO integration_connections (user_id, provider, card_number)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, provider)
		DO UPDATE SET card_number = EXCLUDED.card_number
		RETURNING id, user_id, provider, card_number, created_at
	`, conn.UserID, conn.Provider, conn.CardNumber).StructScan(created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *SQLRepository) GetByProvider(ctx context.Context, userID int, provider string) (*Connection, error) {
	conn := &Connection{}
	err := r.db.GetContext(ctx, conn, `
		SELECT id, user_id, provider, card_number, created_at
		FROM integration_connections
		WHERE user_id = $1
		  AND provider = $2
	`, userID, provider)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotConnected
	}
	if err != nil {
		return nil, err
	}
	return conn, nil
}
