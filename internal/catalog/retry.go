package catalog

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/leetprep/internal/config"
	"github.com/abhisek/leetprep/internal/logging"
)

// RetryFetcher is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryFetcher struct {
	inner  Fetcher
	config config.RetryConfig
	logger *zap.Logger
}

// WithRetry wraps a Fetcher with retry logic.
func WithRetry(f Fetcher, cfg config.RetryConfig, logger *zap.Logger) Fetcher {
	return &RetryFetcher{inner: f, config: cfg, logger: logging.OrNop(logger)}
}

func (r *RetryFetcher) Fetch(ctx context.Context, slug string) (*Metadata, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		meta, err := r.inner.Fetch(ctx, slug)
		if err == nil {
			return meta, nil
		}
		lastErr = err

		if ctx.Err() != nil || !shouldRetry(err) {
			return nil, err
		}

		// Last attempt: don't sleep, just return the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		r.logger.Warn("catalog fetch failed, retrying",
			zap.String("slug", slug),
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

// shouldRetry determines if an error is retryable.
func shouldRetry(err error) bool {
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrUnavailable
	if errors.As(err, &unavail) {
		return true
	}
	return false
}

// backoff computes the wait duration for the given attempt.
func (r *RetryFetcher) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return min(rl.RetryAfter, r.config.MaxWait)
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
