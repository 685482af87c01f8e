package membership

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"fittrack/internal/logger"
	"fittrack/internal/metrics"
)

const (
	MinBatchSize = 1
	MaxBatchSize = 100
)

var allowedDurations = map[int]bool{7: true, 30: true, 90: true, 180: true, 365: true}

var (
	ErrInvalidBatchSize = errors.New("batch size must be between 1 and 100")
	ErrInvalidTier      = errors.New("invalid tier")
	ErrInvalidDuration  = errors.New("duration must be one of 7, 30, 90, 180 or 365 days")
)

// Issuer handles admin-side key generation and revocation.
type Issuer struct {
	repo     Repository
	notifier Notifier
}

func NewIssuer(repo Repository, notifier Notifier) *Issuer {
	return &Issuer{repo: repo, notifier: notifier}
}

// Generate creates count keys sharing the same tier and duration. The whole
// batch fails on any invalid input; one aggregated notification is emitted
// per batch, not per key.
func (i *Issuer) Generate(ctx context.Context, adminName string, tier Tier, durationDays, count int) ([]Key, error) {
	if count < MinBatchSize || count > MaxBatchSize {
		return nil, ErrInvalidBatchSize
	}
	if !tier.Valid() {
		return nil, ErrInvalidTier
	}
	if !allowedDurations[durationDays] {
		return nil, ErrInvalidDuration
	}

	batch := make([]Key, count)
	for n := range batch {
		batch[n] = Key{
			Code:         newCode(tier),
			Tier:         tier,
			DurationDays: durationDays,
		}
	}

	keys, err := i.repo.InsertKeys(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to insert key batch: %w", err)
	}

	metrics.RecordKeysIssued(string(tier), len(keys))
	i.emit(ctx, adminName, ActionKeysIssued, tier,
		fmt.Sprintf("%d keys, %d days", len(keys), durationDays))

	return keys, nil
}

// Revoke marks a key revoked. Revoking an already-revoked key is a no-op
// success; a granted membership is never clawed back — only future
// applications of the key are blocked.
func (i *Issuer) Revoke(ctx context.Context, adminName string, keyID int) (bool, error) {
	ok, err := i.repo.SetKeyRevoked(ctx, keyID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	metrics.RecordKeyRevoked()
	i.emit(ctx, adminName, ActionKeyRevoked, "", fmt.Sprintf("key id %d", keyID))
	return true, nil
}

func (i *Issuer) List(ctx context.Context, limit, offset int) ([]Key, error) {
	return i.repo.ListKeys(ctx, limit, offset)
}

func (i *Issuer) emit(ctx context.Context, adminName, action string, tier Tier, details string) {
	if err := i.notifier.Notify(ctx, Event{
		Username: adminName,
		Action:   action,
		Tier:     tier,
		Details:  details,
	}); err != nil {
		logger.Error("admin notification failed", "action", action, "error", err)
	}
}

// newCode builds an opaque key code: a tier abbreviation for human
// readability plus a random suffix. The prefix is cosmetic and never parsed
// back into a tier.
func newCode(tier Tier) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%s", tier.CodePrefix(), suffix[:16])
}
