package workout

import (
	"context"
	"time"

	"fittrack/internal/insight"
	"fittrack/internal/logger"
	"fittrack/internal/metrics"
)

// EntitlementGate is the slice of the membership gate this service needs.
type EntitlementGate interface {
	AllowWorkout(ctx context.Context, userID int) error
	InsightEnabled(ctx context.Context, userID int) bool
}

// MoodSummarizer is the external AI enrichment collaborator.
type MoodSummarizer interface {
	SummarizeMood(ctx context.Context, w insight.WorkoutContext) (string, error)
}

type Service interface {
	Create(ctx context.Context, userID int, req CreateRequest) (*Workout, error)
	List(ctx context.Context, userID, limit, offset int) ([]Workout, error)
	Delete(ctx context.Context, userID, workoutID int) error
}

type service struct {
	repo     Repository
	gate     EntitlementGate
	insights MoodSummarizer
}

func NewService(repo Repository, gate EntitlementGate, insights MoodSummarizer) Service {
	return &service{repo: repo, gate: gate, insights: insights}
}

// Create logs a workout after the entitlement gate passes. Mood insight is a
// premium-and-above enrichment; its absence or failure never fails the
// creation.
func (s *service) Create(ctx context.Context, userID int, req CreateRequest) (*Workout, error) {
	if err := s.gate.AllowWorkout(ctx, userID); err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	created, err := s.repo.Create(ctx, &Workout{
		UserID:          userID,
		Type:            req.Type,
		DurationMinutes: req.DurationMinutes,
		Intensity:       req.Intensity,
		Notes:           req.Notes,
		Date:            date,
	})
	if err != nil {
		return nil, err
	}
	metrics.WorkoutsLoggedTotal.Inc()

	if s.gate.InsightEnabled(ctx, userID) {
		s.enrich(ctx, created)
	}

	return created, nil
}

func (s *service) enrich(ctx context.Context, w *Workout) {
	summary, err := s.insights.SummarizeMood(ctx, insight.WorkoutContext{
		Type:            w.Type,
		DurationMinutes: w.DurationMinutes,
		Intensity:       w.Intensity,
		Notes:           w.Notes,
	})
	if err != nil {
		logger.Debugf("Mood insight skipped for workout %d: %v", w.ID, err)
		return
	}

	if err := s.repo.SetMoodInsight(ctx, w.ID, summary); err != nil {
		logger.Errorf("Failed to store mood insight for workout %d: %v", w.ID, err)
		return
	}
	w.MoodInsight = &summary
}

func (s *service) List(ctx context.Context, userID, limit, offset int) ([]Workout, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

func (s *service) Delete(ctx context.Context, userID, workoutID int) error {
	return s.repo.Delete(ctx, userID, workoutID)
}
