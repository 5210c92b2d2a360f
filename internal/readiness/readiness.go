// Package readiness combines mastery, topic coverage and recent activity
// into a single interview-readiness score.
package readiness

import (
	"math"
	"time"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/config"
)

const (
	masteryWeight  = 0.4
	coverageWeight = 0.3
	activityWeight = 0.3
)

// Breakdown is a readiness score with its components.
type Breakdown struct {
	Score          float64
	AvgMastery     float64
	Coverage       float64
	Activity       float64
	DistinctTopics int
	RecentAttempts int
}

// Aggregator computes readiness with a fixed configuration.
type Aggregator struct {
	cfg config.ReadinessConfig
}

// NewAggregator creates an aggregator for cfg.
func NewAggregator(cfg config.ReadinessConfig) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// Compute returns the readiness of a learner with the given mastery map and
// full attempt history. No attempts at all yields a zero breakdown.
func (a *Aggregator) Compute(mastery map[string]float64, attempts []attempt.Attempt, now time.Time) Breakdown {
	if len(attempts) == 0 {
		return Breakdown{}
	}

	var b Breakdown
	if len(mastery) > 0 {
		var sum float64
		for _, s := range mastery {
			sum += s
		}
		b.AvgMastery = sum / float64(len(mastery))
	}

	topics := make(map[string]struct{})
	cutoff := attempt.AddDays(now, -a.cfg.ActivityWindowDays)
	for _, at := range attempts {
		for _, t := range attempt.CleanTopics(at.Topics) {
			topics[t] = struct{}{}
		}
		if !attempt.Day(at.Date).Before(cutoff) {
			b.RecentAttempts++
		}
	}
	b.DistinctTopics = len(topics)

	b.Coverage = math.Min(float64(b.DistinctTopics)/float64(a.cfg.ExpectedTopics), 1)
	b.Activity = math.Min(float64(b.RecentAttempts)/float64(a.cfg.ActivityTarget), 1)
	b.Score = masteryWeight*b.AvgMastery + coverageWeight*b.Coverage + activityWeight*b.Activity
	return b
}
