// Package report summarizes a learner's practice history.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/config"
	"github.com/abhisek/leetprep/internal/mastery"
	"github.com/abhisek/leetprep/internal/readiness"
	"github.com/abhisek/leetprep/internal/recommend"
)

// DifficultyRate is the success rate of one difficulty level.
type DifficultyRate struct {
	Difficulty  attempt.Difficulty
	Attempts    int
	SuccessRate float64 // percent
}

// Report is a performance summary. An empty report has only Empty set.
type Report struct {
	Empty bool

	TotalAttempts     int
	ProblemsPracticed int
	SuccessRate       float64 // percent
	AvgTimeMinutes    float64

	// ByDifficulty holds only the difficulties that were attempted, in
	// Easy, Medium, Hard order.
	ByDifficulty []DifficultyRate

	// Strongest and Weakest are nil when no topic has a mastery score.
	Strongest *recommend.Topic
	Weakest   *recommend.Topic

	Recommended []recommend.Topic
	Readiness   readiness.Breakdown
}

// Build computes the report for attempts as of now.
func Build(attempts []attempt.Attempt, now time.Time, cfg config.Config) (*Report, error) {
	if len(attempts) == 0 {
		return &Report{Empty: true}, nil
	}

	scores, err := mastery.NewEngine(cfg.Mastery).Compute(attempts, now)
	if err != nil {
		return nil, fmt.Errorf("compute mastery: %w", err)
	}

	r := &Report{TotalAttempts: len(attempts)}

	slugs := make(map[string]struct{})
	type tally struct{ attempts, successes int }
	byDifficulty := make(map[attempt.Difficulty]*tally)
	var successes int
	var totalTime float64
	for _, a := range attempts {
		slugs[a.Slug] = struct{}{}
		totalTime += a.TimeTaken

		t, ok := byDifficulty[a.Difficulty]
		if !ok {
			t = &tally{}
			byDifficulty[a.Difficulty] = t
		}
		t.attempts++
		if a.Success {
			successes++
			t.successes++
		}
	}

	r.ProblemsPracticed = len(slugs)
	r.SuccessRate = percent(successes, len(attempts))
	r.AvgTimeMinutes = totalTime / float64(len(attempts))

	for _, d := range attempt.Difficulties {
		if t, ok := byDifficulty[d]; ok {
			r.ByDifficulty = append(r.ByDifficulty, DifficultyRate{
				Difficulty:  d,
				Attempts:    t.attempts,
				SuccessRate: percent(t.successes, t.attempts),
			})
		}
	}

	r.Strongest, r.Weakest = extremes(scores)

	r.Recommended = recommend.WeakTopics(scores, recommend.CountAttempts(attempts), recommend.Options{
		MinAttempts: cfg.Recommend.MinAttempts,
		TopN:        cfg.Recommend.TopN,
	})
	r.Readiness = readiness.NewAggregator(cfg.Readiness).Compute(scores, attempts, now)
	return r, nil
}

// extremes returns the highest and lowest scored topics. Ties go to the
// alphabetically first topic.
func extremes(scores map[string]float64) (strongest, weakest *recommend.Topic) {
	if len(scores) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	hi := recommend.Topic{Name: names[0], Score: scores[names[0]]}
	lo := hi
	for _, name := range names[1:] {
		s := scores[name]
		if s > hi.Score {
			hi = recommend.Topic{Name: name, Score: s}
		}
		if s < lo.Score {
			lo = recommend.Topic{Name: name, Score: s}
		}
	}
	return &hi, &lo
}

func percent(n, total int) float64 {
	return float64(n) / float64(total) * 100
}
