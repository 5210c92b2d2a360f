package attempt

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalid is matched by every ValidationError.
var ErrInvalid = errors.New("invalid input")

// ValidationError reports malformed input rejected at the boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// MinConfidence and MaxConfidence bound the self-reported confidence scale.
const (
	MinConfidence = 1
	MaxConfidence = 5
)

// ValidateConfidence rejects confidence values outside [1,5].
func ValidateConfidence(c int) error {
	if c < MinConfidence || c > MaxConfidence {
		return &ValidationError{Field: "confidence", Reason: fmt.Sprintf("%d is outside %d-%d", c, MinConfidence, MaxConfidence)}
	}
	return nil
}

// ValidateTimeTaken rejects negative or non-finite durations.
func ValidateTimeTaken(minutes float64) error {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return &ValidationError{Field: "time_taken", Reason: "must be a finite number"}
	}
	if minutes < 0 {
		return &ValidationError{Field: "time_taken", Reason: "cannot be negative"}
	}
	return nil
}

// ValidateSlug rejects empty or blank problem slugs.
func ValidateSlug(slug string) error {
	if strings.TrimSpace(slug) == "" {
		return &ValidationError{Field: "slug", Reason: "must not be empty"}
	}
	return nil
}
