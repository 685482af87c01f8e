package membership

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fittrack/internal/logger"
	"fittrack/internal/metrics"
)

// Event is a membership-change notification payload.
type Event struct {
	Username string `json:"username"`
	Action   string `json:"action"`
	Tier     Tier   `json:"tier"`
	Details  string `json:"details"`
}

const (
	ActionKeyRedeemed     = "key_redeemed"
	ActionKeyForceApplied = "key_force_applied"
	ActionKeysIssued      = "keys_issued"
	ActionKeyRevoked      = "key_revoked"
)

// Notifier delivers membership events to the webhook sink. Delivery is best
// effort: the entitlement change is the source of truth and a failed
// notification never fails the redemption.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// UserDirectory resolves user ids to display names for event payloads.
type UserDirectory interface {
	Username(ctx context.Context, userID int) (string, error)
}

// Engine runs the key redemption state machine:
// Validating -> Rejected | InfoOnly | Applied.
type Engine struct {
	repo     Repository
	users    UserDirectory
	notifier Notifier
}

func NewEngine(repo Repository, users UserDirectory, notifier Notifier) *Engine {
	return &Engine{repo: repo, users: users, notifier: notifier}
}

// Redeem attempts to apply the key identified by code to userID.
//
// Validation short-circuits in order: unknown code, revoked key, key used by
// another user (bypassable), existing active subscription (informational,
// bypassable). force skips the two bypassable checks after explicit user
// confirmation; revocation is never bypassable.
func (e *Engine) Redeem(ctx context.Context, userID int, code string, force bool) (*Result, error) {
	key, res, err := e.validateKey(ctx, userID, code, force)
	if err != nil {
		return nil, err
	}
	if res != nil {
		return e.record(res), nil
	}

	if !force {
		rec, err := e.activeMembership(ctx, userID)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			return e.record(infoOnly(rec.Tier, FormatRemaining(rec), key.Tier.Above(rec.Tier))), nil
		}
	}

	res, err = e.apply(ctx, userID, key, force)
	if err != nil {
		return nil, err
	}
	return e.record(res), nil
}

// Upgrade shares the key validation of Redeem but requires the key's tier to
// match the requested one and never soft-blocks on an existing subscription.
func (e *Engine) Upgrade(ctx context.Context, userID int, tier Tier, code string, force bool) (*Result, error) {
	key, res, err := e.validateKey(ctx, userID, code, force)
	if err != nil {
		return nil, err
	}
	if res != nil {
		return e.record(res), nil
	}

	if key.Tier != tier {
		return e.record(rejected(RejectTierMismatch, false,
			fmt.Sprintf("key grants %s, not %s", key.Tier, tier))), nil
	}

	res, err = e.apply(ctx, userID, key, force)
	if err != nil {
		return nil, err
	}
	return e.record(res), nil
}

// validateKey covers lookup, revocation and prior-use. A non-nil Result is a
// terminal rejection.
func (e *Engine) validateKey(ctx context.Context, userID int, code string, force bool) (*Key, *Result, error) {
	key, err := e.repo.GetKeyByCode(ctx, code)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, rejected(RejectKeyNotFound, false, "no key with that code exists"), nil
	}
	if err != nil {
		return nil, nil, err
	}

	if key.Revoked {
		return nil, rejected(RejectKeyRevoked, false, "this key has been revoked"), nil
	}

	if key.UsedByOther(userID) {
		if !force {
			res := rejected(RejectKeyAlreadyUsed, true, "this key was already redeemed by another account")
			res.Key = key
			return nil, res, nil
		}
		logger.Info("force-apply override of used key",
			"key", key.MaskedCode(), "user_id", userID, "previous_user_id", *key.UsedBy)
	}

	return key, nil, nil
}

func (e *Engine) activeMembership(ctx context.Context, userID int) (*Record, error) {
	rec, err := e.repo.GetActiveMembership(ctx, userID)
	if errors.Is(err, ErrNoActiveMembership) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if rec.Expired(time.Now()) {
		return nil, nil
	}
	return rec, nil
}

func (e *Engine) apply(ctx context.Context, userID int, key *Key, force bool) (*Result, error) {
	claimed, err := e.repo.MarkKeyUsed(ctx, key.Code, userID, force)
	if errors.Is(err, ErrKeyClaimed) {
		// Lost the claim race, or the key was revoked between validation and
		// the conditional write. Re-read to tell the two apart.
		current, ferr := e.repo.GetKeyByCode(ctx, key.Code)
		if ferr == nil && current.Revoked {
			return rejected(RejectKeyRevoked, false, "this key has been revoked"), nil
		}
		res := rejected(RejectKeyAlreadyUsed, true, "this key was already redeemed by another account")
		res.Key = current
		return res, nil
	}
	if err != nil {
		return nil, err
	}

	endDate := time.Now().Add(time.Duration(claimed.DurationDays) * 24 * time.Hour)
	rec, err := e.repo.SupersedeMembership(ctx, userID, claimed.Tier, endDate, &claimed.ID)
	if err != nil {
		return nil, err
	}

	action := ActionKeyRedeemed
	if force {
		action = ActionKeyForceApplied
	}
	e.emit(ctx, userID, action, claimed.Tier, fmt.Sprintf("key %s", claimed.MaskedCode()))

	msg := fmt.Sprintf("%s membership active for %d days", claimed.Tier, claimed.DurationDays)
	return applied(rec, msg), nil
}

// emit delivers a membership event, swallowing every failure.
func (e *Engine) emit(ctx context.Context, userID int, action string, tier Tier, details string) {
	username, err := e.users.Username(ctx, userID)
	if err != nil {
		username = fmt.Sprintf("user-%d", userID)
	}

	if err := e.notifier.Notify(ctx, Event{
		Username: username,
		Action:   action,
		Tier:     tier,
		Details:  details,
	}); err != nil {
		logger.Error("membership notification failed", "action", action, "error", err)
	}
}

func (e *Engine) record(res *Result) *Result {
	switch res.Status {
	case StatusApplied:
		metrics.RecordRedemption("applied")
	case StatusInfo:
		metrics.RecordRedemption("info")
	default:
		metrics.RecordRedemption(string(res.Reject))
	}
	return res
}
