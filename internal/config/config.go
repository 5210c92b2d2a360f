// Package config holds every tunable constant of the analytics engine,
// the review scheduler and the catalog client.
package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/abhisek/leetprep/internal/attempt"
)

// Config is the full application configuration.
type Config struct {
	Mastery   MasteryConfig   `koanf:"mastery"`
	Retention RetentionConfig `koanf:"retention"`
	Recommend RecommendConfig `koanf:"recommend"`
	Readiness ReadinessConfig `koanf:"readiness"`
	Review    ReviewConfig    `koanf:"review"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Log       LogConfig       `koanf:"log"`
}

// MasteryConfig configures the per-topic mastery model.
type MasteryConfig struct {
	// WindowDays excludes attempts older than this many days.
	WindowDays int `koanf:"window_days"`
	// RecencyDecay is the e-folding time, in days, of the recency factor.
	RecencyDecay    float64         `koanf:"recency_decay"`
	Weights         MasteryWeights  `koanf:"weights"`
	ExpectedMinutes ExpectedMinutes `koanf:"expected_minutes"`
}

// MasteryWeights are the proportions of the four mastery factors. They must
// sum to 1.
type MasteryWeights struct {
	Success    float64 `koanf:"success"`
	Speed      float64 `koanf:"speed"`
	Recency    float64 `koanf:"recency"`
	Confidence float64 `koanf:"confidence"`
}

// Sum returns the total of all weights.
func (w MasteryWeights) Sum() float64 {
	return w.Success + w.Speed + w.Recency + w.Confidence
}

// ExpectedMinutes is the par solve time per difficulty.
type ExpectedMinutes struct {
	Easy   float64 `koanf:"easy"`
	Medium float64 `koanf:"medium"`
	Hard   float64 `koanf:"hard"`
}

// For returns the expected minutes for d. Unknown difficulties are an
// error, never a guessed default.
func (e ExpectedMinutes) For(d attempt.Difficulty) (float64, error) {
	switch d {
	case attempt.Easy:
		return e.Easy, nil
	case attempt.Medium:
		return e.Medium, nil
	case attempt.Hard:
		return e.Hard, nil
	}
	return 0, &attempt.ValidationError{Field: "difficulty", Reason: fmt.Sprintf("no expected time for difficulty %q", d)}
}

// RetentionConfig configures the single-attempt retention decay.
type RetentionConfig struct {
	Decay float64 `koanf:"decay"`
}

// RecommendConfig configures weak-topic recommendations.
type RecommendConfig struct {
	MinAttempts int `koanf:"min_attempts"`
	TopN        int `koanf:"top_n"`
}

// ReadinessConfig configures the readiness aggregate.
type ReadinessConfig struct {
	ExpectedTopics     int `koanf:"expected_topics"`
	ActivityTarget     int `koanf:"activity_target"`
	ActivityWindowDays int `koanf:"activity_window_days"`
}

// ReviewConfig configures the review scheduler.
type ReviewConfig struct {
	// FailureIntervalDays is used for every failed attempt.
	FailureIntervalDays int `koanf:"failure_interval_days"`
	// Intervals[i] is the delay in days after a successful attempt with
	// confidence i+1.
	Intervals []int `koanf:"intervals"`
}

// CatalogConfig configures the remote problem catalog client.
type CatalogConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
	// Rate is the sustained request rate in requests per second.
	Rate  float64     `koanf:"rate"`
	Burst int         `koanf:"burst"`
	Retry RetryConfig `koanf:"retry"`
}

// RetryConfig configures retry behavior for transient catalog failures.
type RetryConfig struct {
	MaxAttempts int           `koanf:"max_attempts"`
	InitialWait time.Duration `koanf:"initial_wait"`
	MaxWait     time.Duration `koanf:"max_wait"`
	Multiplier  float64       `koanf:"multiplier"`
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // console or json
}

// DefaultConfig returns the canonical defaults.
func DefaultConfig() Config {
	return Config{
		Mastery: MasteryConfig{
			WindowDays:   60,
			RecencyDecay: 14,
			Weights: MasteryWeights{
				Success:    0.35,
				Speed:      0.25,
				Recency:    0.20,
				Confidence: 0.20,
			},
			ExpectedMinutes: ExpectedMinutes{
				Easy:   10,
				Medium: 25,
				Hard:   45,
			},
		},
		Retention: RetentionConfig{
			Decay: 7,
		},
		Recommend: RecommendConfig{
			MinAttempts: 1,
			TopN:        3,
		},
		Readiness: ReadinessConfig{
			ExpectedTopics:     10,
			ActivityTarget:     30,
			ActivityWindowDays: 30,
		},
		Review: ReviewConfig{
			FailureIntervalDays: 1,
			Intervals:           []int{2, 2, 5, 7, 10},
		},
		Catalog: CatalogConfig{
			URL:     "https://leetcode.com/graphql",
			Timeout: 10 * time.Second,
			Rate:    2,
			Burst:   1,
			Retry: RetryConfig{
				MaxAttempts: 3,
				InitialWait: 500 * time.Millisecond,
				MaxWait:     5 * time.Second,
				Multiplier:  2.0,
			},
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// weightTolerance absorbs float rounding in the weight sum.
const weightTolerance = 1e-6

// Validate checks every setting and reports all problems at once.
func (c Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	m := c.Mastery
	if m.WindowDays <= 0 {
		add("mastery.window_days must be positive, got %d", m.WindowDays)
	}
	if m.RecencyDecay <= 0 {
		add("mastery.recency_decay must be positive, got %v", m.RecencyDecay)
	}
	for _, w := range []struct {
		name  string
		value float64
	}{
		{"success", m.Weights.Success},
		{"speed", m.Weights.Speed},
		{"recency", m.Weights.Recency},
		{"confidence", m.Weights.Confidence},
	} {
		if w.value < 0 {
			add("mastery.weights.%s must not be negative, got %v", w.name, w.value)
		}
	}
	if sum := m.Weights.Sum(); math.Abs(sum-1) > weightTolerance {
		add("mastery.weights must sum to 1, got %v", sum)
	}
	for _, d := range attempt.Difficulties {
		if v, _ := m.ExpectedMinutes.For(d); v <= 0 {
			add("mastery.expected_minutes.%s must be positive, got %v", strings.ToLower(string(d)), v)
		}
	}

	if c.Retention.Decay <= 0 {
		add("retention.decay must be positive, got %v", c.Retention.Decay)
	}

	if c.Recommend.MinAttempts < 0 {
		add("recommend.min_attempts must not be negative, got %d", c.Recommend.MinAttempts)
	}
	if c.Recommend.TopN <= 0 {
		add("recommend.top_n must be positive, got %d", c.Recommend.TopN)
	}

	r := c.Readiness
	if r.ExpectedTopics <= 0 {
		add("readiness.expected_topics must be positive, got %d", r.ExpectedTopics)
	}
	if r.ActivityTarget <= 0 {
		add("readiness.activity_target must be positive, got %d", r.ActivityTarget)
	}
	if r.ActivityWindowDays <= 0 {
		add("readiness.activity_window_days must be positive, got %d", r.ActivityWindowDays)
	}

	rv := c.Review
	if rv.FailureIntervalDays <= 0 {
		add("review.failure_interval_days must be positive, got %d", rv.FailureIntervalDays)
	}
	if len(rv.Intervals) != attempt.MaxConfidence {
		add("review.intervals must have %d entries (one per confidence level), got %d", attempt.MaxConfidence, len(rv.Intervals))
	} else {
		for i, days := range rv.Intervals {
			if days <= 0 {
				add("review.intervals[%d] must be positive, got %d", i, days)
			}
			if i > 0 && days < rv.Intervals[i-1] {
				add("review.intervals must not decrease with confidence (confidence %d: %d < %d)", i+1, days, rv.Intervals[i-1])
			}
		}
	}

	cat := c.Catalog
	if cat.URL == "" {
		add("catalog.url is required")
	}
	if cat.Timeout <= 0 {
		add("catalog.timeout must be positive, got %s", cat.Timeout)
	}
	if cat.Rate <= 0 {
		add("catalog.rate must be positive, got %v", cat.Rate)
	}
	if cat.Burst <= 0 {
		add("catalog.burst must be positive, got %d", cat.Burst)
	}
	if cat.Retry.MaxAttempts <= 0 {
		add("catalog.retry.max_attempts must be positive, got %d", cat.Retry.MaxAttempts)
	}
	if cat.Retry.Multiplier < 1 {
		add("catalog.retry.multiplier must be at least 1, got %v", cat.Retry.Multiplier)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		add("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		add("log.format must be console or json, got %q", c.Log.Format)
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
