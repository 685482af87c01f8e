package membership

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrKeyNotFound        = errors.New("membership key not found")
	ErrKeyClaimed         = errors.New("membership key already claimed")
	ErrNoActiveMembership = errors.New("no active membership")
)

type SQLRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) GetKeyByCode(ctx context.Context, code string) (*Key, error) {
	key := &Key{}
	err := r.db.GetContext(ctx, key, `
		SELECT id, code, tier, duration_days, revoked, used_by, used_at, created_at
		FROM membership_keys
		WHERE code = $1
	`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return key, nil
}

// MarkKeyUsed is a conditional write: the WHERE clause is the compare-and-set
// that keeps two concurrent redemptions of one fresh key from both
// succeeding. used_at is preserved on repeat claims by the same user.
func (r *SQLRepository) MarkKeyUsed(ctx context.Context, code string, userID int, force bool) (*Key, error) {
	key := &Key{}
	err := r.db.QueryRowxContext(ctx, `
		UPDATE membership_keys
		SET used_by = $2,
		    used_at = COALESCE(used_at, NOW())
		WHERE code = $1
		  AND revoked = FALSE
		  AND (used_by IS NULL OR used_by = $2 OR $3 = TRUE)
		RETURNING id, code, tier, duration_days, revoked, used_by, used_at, created_at
	`, code, userID, force).StructScan(key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyClaimed
	}
	if err != nil {
		return nil, err
	}
	return key, nil
}

func (r *SQLRepository) InsertKeys(ctx context.Context, keys []Key) ([]Key, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	inserted := make([]Key, 0, len(keys))
	for _, k := range keys {
		var row Key
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO membership_keys (code, tier, duration_days)
			VALUES ($1, $2, $3)
			RETURNING id, code, tier, duration_days, revoked, used_by, used_at, created_at
		`, k.Code, k.Tier, k.DurationDays).StructScan(&row)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return inserted, nil
}

func (r *SQLRepository) SetKeyRevoked(ctx context.Context, keyID int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE membership_keys
		SET revoked = TRUE
		WHERE id = $1
	`, keyID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *SQLRepository) ListKeys(ctx context.Context, limit, offset int) ([]Key, error) {
	if limit <= 0 {
		limit = 50
	}
	keys := []Key{}
	err := r.db.SelectContext(ctx, &keys, `
		SELECT id, code, tier, duration_days, revoked, used_by, used_at, created_at
		FROM membership_keys
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	return keys, err
}

func (r *SQLRepository) GetActiveMembership(ctx context.Context, userID int) (*Record, error) {
	rec := &Record{}
	err := r.db.GetContext(ctx, rec, `
		SELECT id, user_id, tier, start_date, end_date, active, key_id, created_at
		FROM membership_records
		WHERE user_id = $1
		  AND active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoActiveMembership
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *SQLRepository) SupersedeMembership(ctx context.Context, userID int, tier Tier, endDate time.Time, keyID *int) (*Record, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE membership_records
		SET active = FALSE
		WHERE user_id = $1
		  AND active = TRUE
	`, userID)
	if err != nil {
		return nil, err
	}

	rec := &Record{}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO membership_records (user_id, tier, start_date, end_date, active, key_id)
		VALUES ($1, $2, NOW(), $3, TRUE, $4)
		RETURNING id, user_id, tier, start_date, end_date, active, key_id, created_at
	`, userID, tier, endDate, keyID).StructScan(rec)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rec, nil
}
