package membership

import (
	"context"
	"time"
)

// Repository is the persistence contract for keys and membership records.
//
// GetKeyByCode and GetActiveMembership return ErrKeyNotFound /
// ErrNoActiveMembership rather than sql.ErrNoRows so callers never depend
// on the storage driver.
type Repository interface {
	GetKeyByCode(ctx context.Context, code string) (*Key, error)
	// MarkKeyUsed conditionally claims a key for userID. Without force the
	// write succeeds only while the key is unclaimed or already claimed by
	// the same user; a lost race returns ErrKeyClaimed. Revoked keys are
	// never claimable.
	MarkKeyUsed(ctx context.Context, code string, userID int, force bool) (*Key, error)
	InsertKeys(ctx context.Context, keys []Key) ([]Key, error)
	SetKeyRevoked(ctx context.Context, keyID int) (bool, error)
	ListKeys(ctx context.Context, limit, offset int) ([]Key, error)

	GetActiveMembership(ctx context.Context, userID int) (*Record, error)
	// SupersedeMembership deactivates the user's current record and inserts
	// the replacement in one transaction, so a concurrent resolve never sees
	// zero or two active records.
	SupersedeMembership(ctx context.Context, userID int, tier Tier, endDate time.Time, keyID *int) (*Record, error)
}
