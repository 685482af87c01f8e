package membership

import (
	"context"
	"fmt"
	"time"

	"fittrack/internal/metrics"
)

// DenialReason distinguishes entitlement denials from generic failures so
// callers can render an upgrade prompt instead of an error page.
type DenialReason string

const (
	ReasonLimitReached DenialReason = "feature_limit_reached"
	ReasonUnavailable  DenialReason = "feature_unavailable"
)

// Denial is returned by gate checks when the operation is blocked by the
// user's tier. It satisfies error so services can pass it up unchanged.
type Denial struct {
	Feature string       `json:"feature"`
	Reason  DenialReason `json:"reason"`
	Message string       `json:"message"`
}

func (d *Denial) Error() string {
	return d.Message
}

func deny(feature string, reason DenialReason, msg string) *Denial {
	metrics.RecordGateDenial(feature)
	return &Denial{Feature: feature, Reason: reason, Message: msg}
}

// WorkoutCounter reports how many workouts a user logged on or after a
// cutoff.
type WorkoutCounter interface {
	CountSince(ctx context.Context, userID int, since time.Time) (int, error)
}

// GoalCounter reports a user's non-completed goal count.
type GoalCounter interface {
	CountOpen(ctx context.Context, userID int) (int, error)
}

// Gate performs entitlement checks ahead of tier-limited operations.
type Gate struct {
	resolver *Resolver
	workouts WorkoutCounter
	goals    GoalCounter
}

func NewGate(resolver *Resolver, workouts WorkoutCounter, goals GoalCounter) *Gate {
	return &Gate{resolver: resolver, workouts: workouts, goals: goals}
}

// AllowWorkout denies when the tier carries a weekly workout limit and the
// user already logged that many workouts in the trailing 7 days. The window
// is rolling, not a calendar week.
func (g *Gate) AllowWorkout(ctx context.Context, userID int) error {
	ent, err := g.resolver.Resolve(ctx, userID)
	if err != nil {
		return err
	}

	max := ent.Entitlements.WeeklyWorkoutLimit
	if max == nil {
		return nil
	}

	since := time.Now().Add(-7 * 24 * time.Hour)
	count, err := g.workouts.CountSince(ctx, userID, since)
	if err != nil {
		return err
	}
	if count >= *max {
		return deny("workout_create", ReasonLimitReached,
			fmt.Sprintf("weekly workout limit of %d reached on the %s plan", *max, ent.Tier))
	}
	return nil
}

// AllowGoal denies when the user's non-completed goals meet the tier's goal
// limit. A nil limit always passes.
func (g *Gate) AllowGoal(ctx context.Context, userID int) error {
	ent, err := g.resolver.Resolve(ctx, userID)
	if err != nil {
		return err
	}

	max := ent.Entitlements.GoalLimit
	if max == nil {
		return nil
	}

	count, err := g.goals.CountOpen(ctx, userID)
	if err != nil {
		return err
	}
	if count >= *max {
		return deny("goal_create", ReasonLimitReached,
			fmt.Sprintf("active goal limit of %d reached on the %s plan", *max, ent.Tier))
	}
	return nil
}

// AllowFitnessSync gates third-party fitness tracker access (read or
// connect) at premium and above.
func (g *Gate) AllowFitnessSync(ctx context.Context, userID int) error {
	ent, err := g.resolver.Resolve(ctx, userID)
	if err != nil {
		return err
	}
	if !ent.Tier.AtLeast(TierPremium) {
		return deny("fitness_sync", ReasonUnavailable,
			"fitness tracker sync requires a premium membership or above")
	}
	return nil
}

// AllowGymCard gates the partner gym card on the catalog flag.
func (g *Gate) AllowGymCard(ctx context.Context, userID int) error {
	ent, err := g.resolver.Resolve(ctx, userID)
	if err != nil {
		return err
	}
	if !ent.Entitlements.GymCard {
		return deny("gym_card", ReasonUnavailable,
			"the partner gym card requires a premium membership or above")
	}
	return nil
}

// AllowGymAnalytics gates gym visit analytics on the catalog flag.
func (g *Gate) AllowGymAnalytics(ctx context.Context, userID int) error {
	ent, err := g.resolver.Resolve(ctx, userID)
	if err != nil {
		return err
	}
	if !ent.Entitlements.GymAnalytics {
		return deny("gym_analytics", ReasonUnavailable,
			"gym analytics requires a pro membership or above")
	}
	return nil
}

// InsightEnabled reports whether AI mood insights run for this user. A false
// return (or a resolve failure) silently skips the enrichment; it never
// blocks the underlying operation.
func (g *Gate) InsightEnabled(ctx context.Context, userID int) bool {
	ent, err := g.resolver.Resolve(ctx, userID)
	if err != nil {
		return false
	}
	return ent.Tier.AtLeast(TierPremium)
}
