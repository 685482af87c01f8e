package membership

import (
	"strings"
	"time"
)

// Key is a redeemable membership voucher. Tier and duration are fixed at
// creation; keys are never deleted, only marked used or revoked.
type Key struct {
	ID           int        `db:"id" json:"id"`
	Code         string     `db:"code" json:"code"`
	Tier         Tier       `db:"tier" json:"tier"`
	DurationDays int        `db:"duration_days" json:"duration_days"`
	Revoked      bool       `db:"revoked" json:"revoked"`
	UsedBy       *int       `db:"used_by" json:"used_by,omitempty"`
	UsedAt       *time.Time `db:"used_at" json:"used_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

func (k *Key) Used() bool {
	return k.UsedBy != nil
}

func (k *Key) UsedByOther(userID int) bool {
	return k.UsedBy != nil && *k.UsedBy != userID
}

// MaskedCode elides the middle of the code so audit logs never carry the
// full secret.
func (k *Key) MaskedCode() string {
	if len(k.Code) <= 8 {
		return strings.Repeat("*", len(k.Code))
	}
	return k.Code[:4] + "..." + k.Code[len(k.Code)-4:]
}

// Record is a user's entitlement grant. At most one record per user is
// active at any time; a new grant supersedes the old one instead of
// overlapping it.
type Record struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Tier      Tier      `db:"tier" json:"tier"`
	StartDate time.Time `db:"start_date" json:"start_date"`
	EndDate   time.Time `db:"end_date" json:"end_date"`
	Active    bool      `db:"active" json:"active"`
	KeyID     *int      `db:"key_id" json:"key_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (r *Record) Expired(now time.Time) bool {
	return r.EndDate.Before(now)
}

// Status discriminates redemption outcomes. Info is a legitimate business
// outcome, not an error: the caller re-invokes with forceApply after user
// confirmation.
type Status string

const (
	StatusApplied  Status = "applied"
	StatusInfo     Status = "current_subscription_active"
	StatusRejected Status = "rejected"
)

// RejectKind classifies terminal validation failures.
type RejectKind string

const (
	RejectKeyNotFound    RejectKind = "key_not_found"
	RejectKeyRevoked     RejectKind = "key_revoked"
	RejectKeyAlreadyUsed RejectKind = "key_already_used"
	RejectTierMismatch   RejectKind = "tier_mismatch"
)

// Result is the discriminated outcome of a redemption or upgrade attempt.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`

	// Applied
	Tier   Tier    `json:"tier,omitempty"`
	Record *Record `json:"record,omitempty"`

	// Rejected
	Reject     RejectKind `json:"reject_reason,omitempty"`
	Bypassable bool       `json:"bypassable,omitempty"`
	Key        *Key       `json:"key,omitempty"`

	// Info
	CurrentTier   Tier   `json:"current_tier,omitempty"`
	TimeRemaining string `json:"time_remaining,omitempty"`
	IsUpgrade     bool   `json:"is_upgrade,omitempty"`
}

func rejected(kind RejectKind, bypassable bool, msg string) *Result {
	return &Result{
		Status:     StatusRejected,
		Reject:     kind,
		Bypassable: bypassable,
		Message:    msg,
	}
}

func applied(rec *Record, msg string) *Result {
	return &Result{
		Status:  StatusApplied,
		Tier:    rec.Tier,
		Record:  rec,
		Message: msg,
	}
}

func infoOnly(current Tier, remaining string, isUpgrade bool) *Result {
	return &Result{
		Status:        StatusInfo,
		CurrentTier:   current,
		TimeRemaining: remaining,
		IsUpgrade:     isUpgrade,
		Bypassable:    true,
		Message:       "an active subscription already exists; confirm to replace it",
	}
}
