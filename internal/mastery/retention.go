package mastery

import (
	"fmt"
	"time"

	"github.com/abhisek/leetprep/internal/attempt"
)

// Retention is the decayed confidence of a single attempt:
// confidence * exp(-days_elapsed / decayDays). It ranges over [0,5].
func Retention(date time.Time, confidence int, now time.Time, decayDays float64) (float64, error) {
	if err := attempt.ValidateConfidence(confidence); err != nil {
		return 0, err
	}
	if decayDays <= 0 {
		return 0, fmt.Errorf("retention decay must be positive, got %v", decayDays)
	}
	return float64(confidence) * decay(attempt.DaysBetween(date, now), decayDays), nil
}
