// Package mastery derives per-topic mastery scores from attempt history.
package mastery

import (
	"fmt"
	"math"
	"time"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/config"
)

// maxConfidence normalizes mean confidence to [0,1].
const maxConfidence = float64(attempt.MaxConfidence)

// TopicScore is the mastery of one topic together with the factors it was
// computed from.
type TopicScore struct {
	Topic string
	Score float64

	SuccessRate     float64
	AvgSpeed        float64
	Recency         float64
	ConfidenceScore float64

	Attempts       int
	LastAttempt    time.Time
	LastConfidence int
}

// Engine computes mastery with a fixed configuration.
type Engine struct {
	cfg config.MasteryConfig
}

// NewEngine creates an engine for cfg.
func NewEngine(cfg config.MasteryConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Compute returns the mastery score of every topic attempted within the
// configured window. Topics with no attempts in the window are absent.
func (e *Engine) Compute(attempts []attempt.Attempt, now time.Time) (map[string]float64, error) {
	breakdown, err := e.Breakdown(attempts, now)
	if err != nil {
		return nil, err
	}
	scores := make(map[string]float64, len(breakdown))
	for topic, ts := range breakdown {
		scores[topic] = ts.Score
	}
	return scores, nil
}

// topicAccumulator collects the running sums for one topic.
type topicAccumulator struct {
	count         int
	successes     int
	speedSum      float64
	confidenceSum int
	latest        time.Time
	latestConf    int
}

// Breakdown is Compute with the individual factors exposed.
func (e *Engine) Breakdown(attempts []attempt.Attempt, now time.Time) (map[string]TopicScore, error) {
	cutoff := attempt.AddDays(now, -e.cfg.WindowDays)

	groups := make(map[string]*topicAccumulator)
	// Topics are visited in first-seen order so that equal dates resolve
	// LastConfidence to the later attempt.
	var order []string

	for i, a := range attempts {
		if attempt.Day(a.Date).Before(cutoff) {
			continue
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("attempt %d (%s): %w", i, a.Slug, err)
		}
		expected, err := e.cfg.ExpectedMinutes.For(a.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("attempt %d (%s): %w", i, a.Slug, err)
		}
		speed := SpeedScore(expected, a.TimeTaken)
		day := attempt.Day(a.Date)

		for _, topic := range attempt.CleanTopics(a.Topics) {
			acc, ok := groups[topic]
			if !ok {
				acc = &topicAccumulator{}
				groups[topic] = acc
				order = append(order, topic)
			}
			acc.count++
			if a.Success {
				acc.successes++
			}
			acc.speedSum += speed
			acc.confidenceSum += a.Confidence
			if acc.count == 1 || !day.Before(acc.latest) {
				acc.latest = day
				acc.latestConf = a.Confidence
			}
		}
	}

	w := e.cfg.Weights
	result := make(map[string]TopicScore, len(groups))
	for _, topic := range order {
		acc := groups[topic]
		n := float64(acc.count)

		ts := TopicScore{
			Topic:           topic,
			SuccessRate:     float64(acc.successes) / n,
			AvgSpeed:        acc.speedSum / n,
			Recency:         decay(attempt.DaysBetween(acc.latest, now), e.cfg.RecencyDecay),
			ConfidenceScore: float64(acc.confidenceSum) / n / maxConfidence,
			Attempts:        acc.count,
			LastAttempt:     acc.latest,
			LastConfidence:  acc.latestConf,
		}
		ts.Score = clamp(
			w.Success*ts.SuccessRate+
				w.Speed*ts.AvgSpeed+
				w.Recency*ts.Recency+
				w.Confidence*ts.ConfidenceScore,
			0, 1)
		result[topic] = ts
	}
	return result, nil
}

// SpeedScore rates one attempt's solve time against the expected time.
// A zero-minute attempt counts as maximally fast.
func SpeedScore(expectedMinutes, timeTaken float64) float64 {
	if timeTaken <= 0 {
		return 1
	}
	return math.Min(expectedMinutes/timeTaken, 1)
}

// Round rounds a score to two decimals for presentation.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// decay returns exp(-days/tau). Future dates count as zero days old.
func decay(days int, tau float64) float64 {
	if days < 0 {
		days = 0
	}
	return math.Exp(-float64(days) / tau)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
