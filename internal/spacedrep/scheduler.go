// Package spacedrep schedules spaced-repetition reviews of practiced problems.
package spacedrep

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/config"
	"github.com/abhisek/leetprep/internal/logging"
	"github.com/abhisek/leetprep/internal/store"
)

// Scheduler manages spaced repetition review scheduling.
type Scheduler struct {
	repo   store.ReviewRepo
	cfg    config.ReviewConfig
	logger *zap.Logger
}

// NewScheduler creates a scheduler persisting to repo.
func NewScheduler(repo store.ReviewRepo, cfg config.ReviewConfig, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		repo:   repo,
		cfg:    cfg,
		logger: logging.OrNop(logger),
	}
}

// WithRepo returns a copy of s persisting to repo, e.g. a repository bound
// to a transaction.
func (s *Scheduler) WithRepo(repo store.ReviewRepo) *Scheduler {
	c := *s
	c.repo = repo
	return &c
}

// Schedule sets the next review of a problem after an attempt and returns
// the scheduled date. Any previous schedule is overwritten, even when the
// new date is earlier.
func (s *Scheduler) Schedule(ctx context.Context, problemID, confidence int, success bool, now time.Time) (time.Time, error) {
	days, err := IntervalDays(s.cfg, confidence, success)
	if err != nil {
		return time.Time{}, err
	}
	next := attempt.AddDays(now, days)

	if err := s.repo.Upsert(ctx, problemID, next); err != nil {
		return time.Time{}, fmt.Errorf("schedule review: %w", err)
	}

	s.logger.Debug("review scheduled",
		zap.Int("problem_id", problemID),
		zap.Int("interval_days", days),
		zap.String("next_review_date", attempt.FormatDate(next)),
	)
	return next, nil
}

// Due returns the ids of problems due on or before today, earliest first.
func (s *Scheduler) Due(ctx context.Context, today time.Time) ([]int, error) {
	due, err := s.DueProblems(ctx, today)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(due))
	for i, d := range due {
		ids[i] = d.ProblemID
	}
	return ids, nil
}

// DueProblems is Due joined with problem metadata.
func (s *Scheduler) DueProblems(ctx context.Context, today time.Time) ([]store.DueProblem, error) {
	due, err := s.repo.Due(ctx, attempt.Day(today))
	if err != nil {
		return nil, fmt.Errorf("due reviews: %w", err)
	}
	return due, nil
}

// Get returns the review state of a problem, or nil if it was never scheduled.
func (s *Scheduler) Get(ctx context.Context, problemID int) (*ReviewState, error) {
	r, err := s.repo.Get(ctx, problemID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if r == nil {
		return nil, nil
	}
	return &ReviewState{ProblemID: r.ProblemID, NextReviewDate: r.NextReviewDate}, nil
}

// All returns every scheduled review keyed by problem id.
func (s *Scheduler) All(ctx context.Context) (map[int]time.Time, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	result := make(map[int]time.Time, len(reviews))
	for _, r := range reviews {
		result[r.ProblemID] = r.NextReviewDate
	}
	return result, nil
}
