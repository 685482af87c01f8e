package membership

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Entitlement is the resolved permission set currently in force for a user.
type Entitlement struct {
	Tier         Tier         `json:"tier"`
	Entitlements Entitlements `json:"entitlements"`
	Record       *Record      `json:"record,omitempty"`
}

// Resolver translates a user id into the tier-derived permission set.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve never fails for a missing or expired membership: absence is a
// valid state meaning free tier.
func (r *Resolver) Resolve(ctx context.Context, userID int) (*Entitlement, error) {
	rec, err := r.repo.GetActiveMembership(ctx, userID)
	if errors.Is(err, ErrNoActiveMembership) {
		return &Entitlement{Tier: TierFree, Entitlements: CatalogFor(TierFree)}, nil
	}
	if err != nil {
		return nil, err
	}

	if rec.Expired(time.Now()) {
		return &Entitlement{Tier: TierFree, Entitlements: CatalogFor(TierFree)}, nil
	}

	return &Entitlement{Tier: rec.Tier, Entitlements: CatalogFor(rec.Tier), Record: rec}, nil
}

// RemainingDays is ceil((end - now) / 1 day), never negative.
func RemainingDays(rec *Record) int {
	if rec == nil {
		return 0
	}
	left := time.Until(rec.EndDate)
	if left <= 0 {
		return 0
	}
	days := int(left / (24 * time.Hour))
	if left%(24*time.Hour) > 0 {
		days++
	}
	return days
}

const maxDisplayYears = 10

// FormatRemaining renders the time left at year/month/day granularity,
// rounded down, with years capped at a display maximum.
func FormatRemaining(rec *Record) string {
	days := RemainingDays(rec)
	if days <= 0 {
		return "0 days"
	}

	years := days / 365
	if years >= maxDisplayYears {
		return fmt.Sprintf("%d+ years", maxDisplayYears)
	}

	rem := days % 365
	months := rem / 30
	rem = rem % 30

	parts := []string{}
	if years > 0 {
		parts = append(parts, plural(years, "year"))
	}
	if months > 0 {
		parts = append(parts, plural(months, "month"))
	}
	if rem > 0 || len(parts) == 0 {
		parts = append(parts, plural(rem, "day"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
