package integration

import "time"

const (
	ProviderPlanetFitness = "planet_fitness"
	ProviderAppleFitness  = "apple_fitness"
)

// Connection is a link between a user and an external fitness provider. For
// the gym partner the CardNumber carries the member card; for tracker
// providers it stays empty.
type Connection struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"user_id"`
	Provider   string    `db:"provider" json:"provider"`
	CardNumber string    `db:"card_number" json:"card_number,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"connected_at"`
}

// GymCard is the member-facing view of the partner gym card.
type GymCard struct {
	CardNumber  string    `json:"card_number"`
	GymName     string    `json:"gym_name"`
	MemberSince time.Time `json:"member_since"`
}

// GymAnalytics is a simulated visit report. Real partner telemetry is out of
// scope; values are derived deterministically from the user's connection.
type GymAnalytics struct {
	VisitsThisMonth  int    `json:"visits_this_month"`
	AvgVisitMinutes  int    `json:"avg_visit_minutes"`
	BusiestDay       string `json:"busiest_day"`
	FavoriteTimeSlot string `json:"favorite_time_slot"`
}

// ActivitySample is one synced tracker reading. HeartRateAvg and Calories
// are only populated for tiers with full sync.
type ActivitySample struct {
	Date         time.Time `json:"date"`
	Steps        int       `json:"steps"`
	HeartRateAvg int       `json:"heart_rate_avg,omitempty"`
	Calories     int       `json:"calories,omitempty"`
}

// SyncResult is the payload returned by a tracker sync.
type SyncResult struct {
	Provider string           `json:"provider"`
	FullSync bool             `json:"full_sync"`
	Samples  []ActivitySample `json:"samples"`
	SyncedAt time.Time        `json:"synced_at"`
}
