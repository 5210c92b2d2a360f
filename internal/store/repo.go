package store

import (
	"context"
	"time"

	"github.com/abhisek/leetprep/internal/attempt"
)

// Problem is a catalogued coding problem.
type Problem struct {
	ID         int
	Slug       string
	Title      string
	Difficulty attempt.Difficulty
	Topics     []string
}

// AttemptRow is a persisted attempt before it is joined with its problem.
type AttemptRow struct {
	ID         int64
	ProblemID  int
	Date       time.Time
	TimeTaken  float64
	Confidence int
	Success    bool
}

// Review is the next scheduled review of one problem.
type Review struct {
	ProblemID      int
	NextReviewDate time.Time
}

// DueProblem is a due review joined with its problem.
type DueProblem struct {
	ProblemID      int
	Slug           string
	Title          string
	NextReviewDate time.Time
}

// ProblemRepo manages the problem catalog cache.
type ProblemRepo interface {
	// GetBySlug returns the problem with slug, or nil if none exists.
	GetBySlug(ctx context.Context, slug string) (*Problem, error)

	// Get returns the problem with id, or nil if none exists.
	Get(ctx context.Context, id int) (*Problem, error)

	// InsertOrIgnore stores p unless a problem with the same id exists.
	// It reports whether a row was inserted.
	InsertOrIgnore(ctx context.Context, p Problem) (bool, error)

	// List returns every problem ordered by id.
	List(ctx context.Context) ([]Problem, error)
}

// AttemptRepo stores practice attempts.
type AttemptRepo interface {
	// Insert stores a and returns its id.
	Insert(ctx context.Context, a AttemptRow) (int64, error)

	// List returns every attempt joined with its problem, oldest first.
	List(ctx context.Context) ([]attempt.Attempt, error)
}

// ReviewRepo stores one review schedule per problem.
type ReviewRepo interface {
	// Upsert sets the next review date of a problem, replacing any
	// previous schedule.
	Upsert(ctx context.Context, problemID int, next time.Time) error

	// Get returns the schedule of a problem, or nil if it has none.
	Get(ctx context.Context, problemID int) (*Review, error)

	// List returns every schedule ordered by problem id.
	List(ctx context.Context) ([]Review, error)

	// Due returns the problems reviewable on or before today, ordered by
	// review date then problem id.
	Due(ctx context.Context, today time.Time) ([]DueProblem, error)
}
