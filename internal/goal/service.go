package goal

import (
	"context"

	"fittrack/internal/metrics"
)

// EntitlementGate is the slice of the membership gate this service needs.
type EntitlementGate interface {
	AllowGoal(ctx context.Context, userID int) error
}

type Service interface {
	Create(ctx context.Context, userID int, req CreateRequest) (*Goal, error)
	List(ctx context.Context, userID int) ([]Goal, error)
	Complete(ctx context.Context, userID, goalID int) error
	Delete(ctx context.Context, userID, goalID int) error
}

type service struct {
	repo Repository
	gate EntitlementGate
}

func NewService(repo Repository, gate EntitlementGate) Service {
	return &service{repo: repo, gate: gate}
}

func (s *service) Create(ctx context.Context, userID int, req CreateRequest) (*Goal, error) {
	if err := s.gate.AllowGoal(ctx, userID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
	})
	if err != nil {
		return nil, err
	}
	metrics.GoalsCreatedTotal.Inc()
	return created, nil
}

func (s *service) List(ctx context.Context, userID int) ([]Goal, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Complete frees up a slot against the tier's active goal limit.
func (s *service) Complete(ctx context.Context, userID, goalID int) error {
	return s.repo.Complete(ctx, userID, goalID)
}

func (s *service) Delete(ctx context.Context, userID, goalID int) error {
	return s.repo.Delete(ctx, userID, goalID)
}
