package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/config"
	"github.com/abhisek/leetprep/internal/logging"
)

const questionQuery = `query getQuestion($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionFrontendId
    title
    difficulty
    topicTags { name }
  }
}`

const (
	referer         = "https://leetcode.com"
	maxResponseSize = 1024 * 1024
)

// Client queries the LeetCode GraphQL endpoint.
type Client struct {
	url     string
	timeout time.Duration
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewClient creates a rate-limited catalog client.
func NewClient(cfg config.CatalogConfig, logger *zap.Logger) *Client {
	return &Client{
		url:     cfg.URL,
		timeout: cfg.Timeout,
		http:    &http.Client{},
		limiter: rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst),
		logger:  logging.OrNop(logger),
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data *struct {
		Question *questionPayload `json:"question"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type questionPayload struct {
	QuestionFrontendID string `json:"questionFrontendId"`
	Title              string `json:"title"`
	Difficulty         string `json:"difficulty"`
	TopicTags          []struct {
		Name string `json:"name"`
	} `json:"topicTags"`
}

// Fetch looks up slug. Every call waits for the rate limiter and is bounded
// by the configured timeout.
func (c *Client) Fetch(ctx context.Context, slug string) (*Metadata, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	parent := ctx
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(graphQLRequest{
		Query:     questionQuery,
		Variables: map[string]any{"titleSlug": slug},
	})
	if err != nil {
		return nil, fmt.Errorf("encode catalog request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", referer)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if perr := parent.Err(); perr != nil {
			return nil, perr
		}
		// Includes the per-request timeout expiring.
		return nil, &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("catalog request",
		zap.String("slug", slug),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &ErrUnavailable{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &ErrRateLimit{
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	case resp.StatusCode >= 500:
		return nil, &ErrUnavailable{StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s (status %d)", ErrNotFound, slug, resp.StatusCode)
	}

	return decodeQuestion(slug, raw)
}

func decodeQuestion(slug string, raw []byte) (*Metadata, error) {
	if err := validateResponse(raw); err != nil {
		return nil, err
	}

	var doc graphQLResponse
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}
	if len(doc.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotFound, slug, doc.Errors[0].Message)
	}
	if doc.Data == nil || doc.Data.Question == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}

	q := doc.Data.Question
	id, err := strconv.Atoi(strings.TrimSpace(q.QuestionFrontendID))
	if err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("question id %q is not an integer", q.QuestionFrontendID)}
	}
	difficulty, err := attempt.ParseDifficulty(q.Difficulty)
	if err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}

	topics := make([]string, 0, len(q.TopicTags))
	for _, tag := range q.TopicTags {
		topics = append(topics, tag.Name)
	}

	return &Metadata{
		ID:         id,
		Slug:       slug,
		Title:      q.Title,
		Difficulty: difficulty,
		Topics:     attempt.CleanTopics(topics),
	}, nil
}

// parseRetryAfter understands the delay-seconds form of Retry-After.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
