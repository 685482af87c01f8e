package workout

import "time"

type Workout struct {
	ID              int       `db:"id" json:"id"`
	UserID          int       `db:"user_id" json:"user_id"`
	Type            string    `db:"type" json:"type"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Intensity       string    `db:"intensity" json:"intensity"`
	Notes           string    `db:"notes" json:"notes,omitempty"`
	MoodInsight     *string   `db:"mood_insight" json:"mood_insight,omitempty"`
	Date            time.Time `db:"date" json:"date"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type CreateRequest struct {
	Type            string     `json:"type" binding:"required,min=2,max=50"`
	DurationMinutes int        `json:"duration_minutes" binding:"required,gte=1,lte=1440"`
	Intensity       string     `json:"intensity" binding:"required,oneof=low moderate high"`
	Notes           string     `json:"notes" binding:"max=2000"`
	Date            *time.Time `json:"date"`
}
