package goal

import "time"

type Goal struct {
	ID          int        `db:"id" json:"id"`
	UserID      int        `db:"user_id" json:"user_id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description,omitempty"`
	TargetDate  *time.Time `db:"target_date" json:"target_date,omitempty"`
	Completed   bool       `db:"completed" json:"completed"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

type CreateRequest struct {
	Title       string     `json:"title" binding:"required,min=2,max=100"`
	Description string     `json:"description" binding:"max=2000"`
	TargetDate  *time.Time `json:"target_date"`
}
