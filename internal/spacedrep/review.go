package spacedrep

import (
	"time"

	"github.com/abhisek/leetprep/internal/attempt"
)

// ReviewState holds the review schedule for a single problem.
type ReviewState struct {
	ProblemID      int
	NextReviewDate time.Time
}

// IsDue returns true if the problem is due for review (on or past the review date).
func (rs *ReviewState) IsDue(now time.Time) bool {
	return attempt.DaysBetween(rs.NextReviewDate, now) >= 0
}

// OverdueDays returns how many days past due the problem is. Returns 0 if not yet due.
func (rs *ReviewState) OverdueDays(now time.Time) int {
	return max(attempt.DaysBetween(rs.NextReviewDate, now), 0)
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due.
func (rs *ReviewState) DaysUntilReview(now time.Time) int {
	return max(attempt.DaysBetween(now, rs.NextReviewDate), 0)
}

// ReviewStatus describes a problem's review status for display.
type ReviewStatus string

const (
	ReviewNotDue  ReviewStatus = "not_due"
	ReviewDue     ReviewStatus = "due"
	ReviewOverdue ReviewStatus = "overdue"
)

// Status returns the review status for display.
func (rs *ReviewState) Status(now time.Time) ReviewStatus {
	switch {
	case rs.OverdueDays(now) > 0:
		return ReviewOverdue
	case rs.IsDue(now):
		return ReviewDue
	default:
		return ReviewNotDue
	}
}
