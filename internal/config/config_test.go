package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 1.0, cfg.Mastery.Weights.Sum(), 1e-9)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
		want string
	}{
		{"weights sum", func(c *Config) { c.Mastery.Weights.Success = 0.5 }, "mastery.weights must sum to 1"},
		{"negative weight", func(c *Config) {
			c.Mastery.Weights.Success = -0.1
			c.Mastery.Weights.Speed = 0.7
		}, "mastery.weights.success must not be negative"},
		{"window", func(c *Config) { c.Mastery.WindowDays = 0 }, "mastery.window_days"},
		{"recency decay", func(c *Config) { c.Mastery.RecencyDecay = -1 }, "mastery.recency_decay"},
		{"expected minutes", func(c *Config) { c.Mastery.ExpectedMinutes.Hard = 0 }, "mastery.expected_minutes.hard"},
		{"retention decay", func(c *Config) { c.Retention.Decay = 0 }, "retention.decay"},
		{"top n", func(c *Config) { c.Recommend.TopN = 0 }, "recommend.top_n"},
		{"expected topics", func(c *Config) { c.Readiness.ExpectedTopics = 0 }, "readiness.expected_topics"},
		{"activity target", func(c *Config) { c.Readiness.ActivityTarget = 0 }, "readiness.activity_target"},
		{"interval count", func(c *Config) { c.Review.Intervals = []int{1, 2, 3} }, "review.intervals must have 5 entries"},
		{"interval decreasing", func(c *Config) { c.Review.Intervals = []int{2, 2, 5, 4, 10} }, "must not decrease"},
		{"failure interval", func(c *Config) { c.Review.FailureIntervalDays = 0 }, "review.failure_interval_days"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"catalog url", func(c *Config) { c.Catalog.URL = "" }, "catalog.url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mut(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExpectedMinutesFor(t *testing.T) {
	e := DefaultConfig().Mastery.ExpectedMinutes
	for d, want := range map[attempt.Difficulty]float64{attempt.Easy: 10, attempt.Medium: 25, attempt.Hard: 45} {
		got, err := e.For(d)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := e.For("Impossible")
	assert.ErrorIs(t, err, attempt.ErrInvalid)
}

// isolate points every config lookup at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, EnvPrefix) {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "leetprep", "config.yaml"), `
mastery:
  window_days: 90
  weights:
    success: 0.4
    speed: 0.3
    recency: 0.3
    confidence: 0
review:
  intervals: [1, 3, 6, 9, 14]
catalog:
  timeout: 3s
`)
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.Mastery.WindowDays)
	assert.Equal(t, 0.4, cfg.Mastery.Weights.Success)
	assert.Equal(t, 0.0, cfg.Mastery.Weights.Confidence)
	assert.Equal(t, []int{1, 3, 6, 9, 14}, cfg.Review.Intervals)
	assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout)
	// Untouched settings keep their defaults.
	assert.Equal(t, 14.0, cfg.Mastery.RecencyDecay)
	assert.Equal(t, 3, cfg.Recommend.TopN)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "recommend:\n  top_n: 5\n")

	t.Setenv("LEETPREP_RECOMMEND_TOP_N", "2")
	t.Setenv("LEETPREP_READINESS_ACTIVITY_TARGET", "20")
	t.Setenv("LEETPREP_REVIEW_INTERVALS", "1,2,3,4,5")
	t.Setenv("LEETPREP_CATALOG_RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("LEETPREP_NOT_A_SETTING", "ignored")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Recommend.TopN)
	assert.Equal(t, 20, cfg.Readiness.ActivityTarget)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, cfg.Review.Intervals)
	assert.Equal(t, 5, cfg.Catalog.Retry.MaxAttempts)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "elsewhere.yaml")
	writeFile(t, path, "retention:\n  decay: 3\n")
	t.Setenv("LEETPREP_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Retention.Decay)
}

func TestLoad_InvalidResultRejected(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "mastery:\n  weights:\n    success: 0.9\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must sum to 1")
}

func TestEnvKeys(t *testing.T) {
	keys := envKeys()
	assert.Equal(t, "mastery.weights.success", keys["mastery_weights_success"])
	assert.Equal(t, "mastery.expected_minutes.medium", keys["mastery_expected_minutes_medium"])
	assert.Equal(t, "catalog.retry.initial_wait", keys["catalog_retry_initial_wait"])
	assert.Equal(t, "log.level", keys["log_level"])
	_, ok := keys["mastery_weights"]
	assert.False(t, ok, "struct sections are not leaf keys")
}

func TestLoad_EnvIntervalsMustBeIntegers(t *testing.T) {
	isolate(t)
	t.Setenv("LEETPREP_REVIEW_INTERVALS", "1,2,x,4,5")

	_, err := Load("")
	assert.Error(t, err)
}
