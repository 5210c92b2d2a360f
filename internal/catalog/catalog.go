// Package catalog looks up problem metadata in the remote LeetCode catalog.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/config"
)

// Metadata describes one catalog problem.
type Metadata struct {
	ID         int
	Slug       string
	Title      string
	Difficulty attempt.Difficulty
	Topics     []string
}

// Fetcher resolves a problem slug to its metadata.
type Fetcher interface {
	// Fetch returns the metadata of slug, or an error matching ErrNotFound
	// when the catalog does not know it.
	Fetch(ctx context.Context, slug string) (*Metadata, error)
}

// New returns the production fetcher: an HTTP client wrapped with retries.
func New(cfg config.CatalogConfig, logger *zap.Logger) Fetcher {
	return WithRetry(NewClient(cfg, logger), cfg.Retry, logger)
}

// ErrNotFound is returned when the catalog has no problem for a slug.
var ErrNotFound = errors.New("problem not found in catalog")

// ErrRateLimit indicates the catalog answered 429 Too Many Requests.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("catalog rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrUnavailable indicates the catalog is down or unreachable.
type ErrUnavailable struct {
	StatusCode int
	Err        error
}

func (e *ErrUnavailable) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog unavailable (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("catalog unavailable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the catalog returned a document that does
// not describe a usable problem.
type ErrInvalidResponse struct {
	Content []byte
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid catalog response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
