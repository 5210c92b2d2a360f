package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/config"
)

const twoSumResponse = `{
  "data": {
    "question": {
      "questionFrontendId": "1",
      "title": "Two Sum",
      "difficulty": "Easy",
      "topicTags": [{"name": "Array"}, {"name": "Hash Table"}]
    }
  }
}`

func testConfig(url string) config.CatalogConfig {
	cfg := config.DefaultConfig().Catalog
	cfg.URL = url
	cfg.Timeout = 2 * time.Second
	cfg.Rate = 1000
	cfg.Burst = 10
	cfg.Retry = config.RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
	return cfg
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientFetch_Success(t *testing.T) {
	var got graphQLRequest
	var referer, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		referer = r.Header.Get("Referer")
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		io.WriteString(w, twoSumResponse)
	}))
	defer srv.Close()

	meta, err := NewClient(testConfig(srv.URL), nil).Fetch(context.Background(), "two-sum")
	require.NoError(t, err)

	assert.Equal(t, &Metadata{
		ID:         1,
		Slug:       "two-sum",
		Title:      "Two Sum",
		Difficulty: attempt.Easy,
		Topics:     []string{"Array", "Hash Table"},
	}, meta)
	assert.Equal(t, "https://leetcode.com", referer)
	assert.Equal(t, "application/json", contentType)
	assert.Contains(t, got.Query, "getQuestion")
	assert.Equal(t, "two-sum", got.Variables["titleSlug"])
}

func TestClientFetch_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"null question", http.StatusOK, `{"data":{"question":null}}`},
		{"graphql errors", http.StatusOK, `{"data":null,"errors":[{"message":"That question does not exist"}]}`},
		{"bad request", http.StatusBadRequest, `{}`},
		{"forbidden", http.StatusForbidden, `<html></html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, tt.status, tt.body)
			_, err := NewClient(testConfig(srv.URL), nil).Fetch(context.Background(), "nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestClientFetch_InvalidResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `not json`},
		{"schema mismatch", `{"data":{"question":{"questionFrontendId":1,"title":"X","difficulty":"Easy"}}}`},
		{"non-integer id", `{"data":{"question":{"questionFrontendId":"LCP 01","title":"X","difficulty":"Easy","topicTags":[]}}}`},
		{"unknown difficulty", `{"data":{"question":{"questionFrontendId":"5","title":"X","difficulty":"Extreme","topicTags":[]}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, http.StatusOK, tt.body)
			_, err := NewClient(testConfig(srv.URL), nil).Fetch(context.Background(), "x")
			var inv *ErrInvalidResponse
			assert.ErrorAs(t, err, &inv)
			assert.NotErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestClientFetch_TransientErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := serve(t, http.StatusBadGateway, ``)
		_, err := NewClient(testConfig(srv.URL), nil).Fetch(context.Background(), "x")
		var unavail *ErrUnavailable
		require.ErrorAs(t, err, &unavail)
		assert.Equal(t, http.StatusBadGateway, unavail.StatusCode)
	})

	t.Run("rate limited", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "3")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := NewClient(testConfig(srv.URL), nil).Fetch(context.Background(), "x")
		var rl *ErrRateLimit
		require.ErrorAs(t, err, &rl)
		assert.Equal(t, 3*time.Second, rl.RetryAfter)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := serve(t, http.StatusOK, twoSumResponse)
		url := srv.URL
		srv.Close()

		_, err := NewClient(testConfig(url), nil).Fetch(context.Background(), "x")
		var unavail *ErrUnavailable
		assert.ErrorAs(t, err, &unavail)
	})
}

func TestClientFetch_CanceledContext(t *testing.T) {
	srv := serve(t, http.StatusOK, twoSumResponse)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(testConfig(srv.URL), nil).Fetch(ctx, "two-sum")
	assert.True(t, errors.Is(err, context.Canceled), "err = %v", err)
}

func TestNew_RetriesThroughClient(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, twoSumResponse)
	}))
	defer srv.Close()

	meta, err := New(testConfig(srv.URL), nil).Fetch(context.Background(), "two-sum")
	require.NoError(t, err)
	assert.Equal(t, 1, meta.ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 2*time.Second, parseRetryAfter("2"))
	assert.Zero(t, parseRetryAfter(""))
	assert.Zero(t, parseRetryAfter("Wed, 21 Oct 2015 07:28:00 GMT"))
	assert.Zero(t, parseRetryAfter("-4"))
}
