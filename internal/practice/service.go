// Package practice records practice attempts: it validates input at the
// boundary, resolves problems through the local cache and the remote
// catalog, stores attempts and schedules their reviews.
package practice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/catalog"
	"github.com/abhisek/leetprep/internal/logging"
	"github.com/abhisek/leetprep/internal/spacedrep"
	"github.com/abhisek/leetprep/internal/store"
)

// ErrProblemNotFound is returned when a slug is neither cached locally nor
// known to the catalog.
var ErrProblemNotFound = errors.New("problem not found")

// Service coordinates problem lookup, attempt logging and review scheduling.
type Service struct {
	store     *store.Store
	problems  store.ProblemRepo
	attempts  store.AttemptRepo
	scheduler *spacedrep.Scheduler
	catalog   catalog.Fetcher
	logger    *zap.Logger
}

// NewService creates a practice service. A nil fetcher restricts problem
// resolution to the local cache.
func NewService(st *store.Store, scheduler *spacedrep.Scheduler, fetcher catalog.Fetcher, logger *zap.Logger) *Service {
	return &Service{
		store:     st,
		problems:  st.ProblemRepo(),
		attempts:  st.AttemptRepo(),
		scheduler: scheduler,
		catalog:   fetcher,
		logger:    logging.OrNop(logger),
	}
}

// AddProblem stores p unless a problem with the same id already exists and
// reports whether it was inserted.
func (s *Service) AddProblem(ctx context.Context, p store.Problem) (bool, error) {
	p.Slug = strings.TrimSpace(p.Slug)
	p.Title = strings.TrimSpace(p.Title)
	p.Topics = attempt.CleanTopics(p.Topics)
	if err := validateProblem(p); err != nil {
		return false, err
	}

	inserted, err := s.problems.InsertOrIgnore(ctx, p)
	if err != nil {
		return false, fmt.Errorf("add problem: %w", err)
	}
	if !inserted {
		s.logger.Info("problem already exists", zap.Int("problem_id", p.ID), zap.String("slug", p.Slug))
	}
	return inserted, nil
}

// GetOrCreateProblem returns the problem for slug, fetching it from the
// catalog and caching it locally on a miss.
func (s *Service) GetOrCreateProblem(ctx context.Context, slug string) (*store.Problem, error) {
	slug = strings.TrimSpace(slug)
	if err := attempt.ValidateSlug(slug); err != nil {
		return nil, err
	}

	p, err := s.problems.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("look up problem %s: %w", slug, err)
	}
	if p != nil {
		s.logger.Debug("problem cache hit", zap.String("slug", slug), zap.Int("problem_id", p.ID))
		return p, nil
	}

	if s.catalog == nil {
		return nil, fmt.Errorf("%w: %s", ErrProblemNotFound, slug)
	}

	s.logger.Info("problem cache miss, fetching from catalog", zap.String("slug", slug))
	meta, err := s.catalog.Fetch(ctx, slug)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s: %w", ErrProblemNotFound, slug, err)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch problem %s: %w", slug, err)
	}

	fetched := store.Problem{
		ID:         meta.ID,
		Slug:       slug,
		Title:      meta.Title,
		Difficulty: meta.Difficulty,
		Topics:     meta.Topics,
	}
	if err := validateProblem(fetched); err != nil {
		return nil, fmt.Errorf("catalog metadata for %s: %w", slug, err)
	}

	inserted, err := s.problems.InsertOrIgnore(ctx, fetched)
	if err != nil {
		return nil, fmt.Errorf("cache problem %s: %w", slug, err)
	}
	if inserted {
		s.logger.Info("problem cached", zap.String("slug", slug), zap.Int("problem_id", fetched.ID))
		return &fetched, nil
	}

	// The id is already cached under another slug.
	existing, err := s.problems.Get(ctx, fetched.ID)
	if err != nil {
		return nil, fmt.Errorf("look up problem %d: %w", fetched.ID, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", ErrProblemNotFound, slug)
	}
	return existing, nil
}

// LogRequest is an attempt as entered by the user.
type LogRequest struct {
	Slug string
	// Date is YYYY-MM-DD. Empty means today.
	Date       string
	TimeTaken  float64
	Confidence int
	Success    bool
}

// LogResult describes a stored attempt.
type LogResult struct {
	AttemptID  int64
	Problem    store.Problem
	Date       time.Time
	NextReview time.Time
}

// LogAttempt validates req, resolves its problem, stores the attempt and
// schedules the next review relative to now.
func (s *Service) LogAttempt(ctx context.Context, req LogRequest, now time.Time) (*LogResult, error) {
	date, err := validateRequest(req, now)
	if err != nil {
		return nil, err
	}

	p, err := s.GetOrCreateProblem(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	// The attempt and its review are stored together or not at all.
	var (
		id   int64
		next time.Time
	)
	err = s.store.WithTx(ctx, func(tx *store.Tx) error {
		var err error
		id, err = tx.AttemptRepo().Insert(ctx, store.AttemptRow{
			ProblemID:  p.ID,
			Date:       date,
			TimeTaken:  req.TimeTaken,
			Confidence: req.Confidence,
			Success:    req.Success,
		})
		if err != nil {
			return err
		}
		next, err = s.scheduler.WithRepo(tx.ReviewRepo()).Schedule(ctx, p.ID, req.Confidence, req.Success, now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("log attempt: %w", err)
	}

	s.logger.Info("attempt logged",
		zap.Int64("attempt_id", id),
		zap.String("slug", p.Slug),
		zap.Bool("success", req.Success),
		zap.Int("confidence", req.Confidence),
	)
	return &LogResult{AttemptID: id, Problem: *p, Date: date, NextReview: next}, nil
}

// Attempts returns every stored attempt joined with its problem.
func (s *Service) Attempts(ctx context.Context) ([]attempt.Attempt, error) {
	attempts, err := s.attempts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	return attempts, nil
}

func validateRequest(req LogRequest, now time.Time) (time.Time, error) {
	if err := attempt.ValidateSlug(req.Slug); err != nil {
		return time.Time{}, err
	}
	if err := attempt.ValidateConfidence(req.Confidence); err != nil {
		return time.Time{}, err
	}
	if err := attempt.ValidateTimeTaken(req.TimeTaken); err != nil {
		return time.Time{}, err
	}
	if strings.TrimSpace(req.Date) == "" {
		return attempt.Day(now), nil
	}
	return attempt.ParseDate(strings.TrimSpace(req.Date))
}

func validateProblem(p store.Problem) error {
	if p.ID <= 0 {
		return &attempt.ValidationError{Field: "id", Reason: fmt.Sprintf("must be positive, got %d", p.ID)}
	}
	if err := attempt.ValidateSlug(p.Slug); err != nil {
		return err
	}
	if p.Title == "" {
		return &attempt.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !p.Difficulty.Valid() {
		return &attempt.ValidationError{Field: "difficulty", Reason: fmt.Sprintf("unknown difficulty %q", p.Difficulty)}
	}
	if len(attempt.CleanTopics(p.Topics)) == 0 {
		return &attempt.ValidationError{Field: "topics", Reason: "at least one topic is required"}
	}
	return nil
}
