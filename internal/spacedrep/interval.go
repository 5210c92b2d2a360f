package spacedrep

import (
	"fmt"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/config"
)

// IntervalDays returns the delay until the next review. Failures always use
// the failure interval; successes index the interval table by confidence.
func IntervalDays(cfg config.ReviewConfig, confidence int, success bool) (int, error) {
	if err := attempt.ValidateConfidence(confidence); err != nil {
		return 0, err
	}
	if !success {
		return cfg.FailureIntervalDays, nil
	}
	i := confidence - attempt.MinConfidence
	if i >= len(cfg.Intervals) {
		return 0, fmt.Errorf("no review interval for confidence %d", confidence)
	}
	return cfg.Intervals[i], nil
}
