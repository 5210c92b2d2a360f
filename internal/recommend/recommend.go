// Package recommend ranks topics by weakness.
package recommend

import (
	"sort"

	"github.com/abhisek/leetprep/internal/attempt"
)

// Topic is one recommended topic and its mastery score.
type Topic struct {
	Name  string
	Score float64
}

// Options bounds a recommendation.
type Options struct {
	// MinAttempts drops topics attempted fewer times than this, all time.
	MinAttempts int
	// TopN caps the result length. Zero or less returns nothing.
	TopN int
}

// WeakTopics returns up to opts.TopN topics with the lowest mastery, weakest
// first, ties broken by name. Topics with fewer than opts.MinAttempts
// attempts in counts are never returned. The result is not padded.
func WeakTopics(mastery map[string]float64, counts map[string]int, opts Options) []Topic {
	if opts.TopN <= 0 {
		return nil
	}

	candidates := make([]Topic, 0, len(mastery))
	for name, score := range mastery {
		if counts[name] < opts.MinAttempts {
			continue
		}
		candidates = append(candidates, Topic{Name: name, Score: score})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score < candidates[j].Score
		}
		return candidates[i].Name < candidates[j].Name
	})

	if len(candidates) > opts.TopN {
		candidates = candidates[:opts.TopN]
	}
	return candidates
}

// CountAttempts returns the all-time number of attempts per topic.
func CountAttempts(attempts []attempt.Attempt) map[string]int {
	counts := make(map[string]int)
	for _, a := range attempts {
		for _, topic := range attempt.CleanTopics(a.Topics) {
			counts[topic]++
		}
	}
	return counts
}
