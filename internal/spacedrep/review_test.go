package spacedrep

import (
	"testing"
	"time"
)

func TestIsDue_BeforeDate(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rs := &ReviewState{NextReviewDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}
	if rs.IsDue(now) {
		t.Error("expected not due before review date")
	}
}

func TestIsDue_OnDate(t *testing.T) {
	now := time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)
	rs := &ReviewState{NextReviewDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	if !rs.IsDue(now) {
		t.Error("expected due on review date")
	}
}

func TestIsDue_AfterDate(t *testing.T) {
	now := time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC)
	rs := &ReviewState{NextReviewDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	if !rs.IsDue(now) {
		t.Error("expected due after review date")
	}
}

func TestOverdueDays(t *testing.T) {
	review := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	rs := &ReviewState{NextReviewDate: review}

	if got := rs.OverdueDays(time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("OverdueDays(before) = %d, want 0", got)
	}
	if got := rs.OverdueDays(time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)); got != 3 {
		t.Errorf("OverdueDays(3 days late) = %d, want 3", got)
	}
}

func TestDaysUntilReview(t *testing.T) {
	review := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	rs := &ReviewState{NextReviewDate: review}

	if got := rs.DaysUntilReview(time.Date(2025, 1, 5, 22, 0, 0, 0, time.UTC)); got != 5 {
		t.Errorf("DaysUntilReview = %d, want 5", got)
	}
	if got := rs.DaysUntilReview(time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("DaysUntilReview(past) = %d, want 0", got)
	}
}

func TestStatus(t *testing.T) {
	rs := &ReviewState{NextReviewDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		now  time.Time
		want ReviewStatus
	}{
		{time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC), ReviewNotDue},
		{time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC), ReviewDue},
		{time.Date(2025, 1, 11, 12, 0, 0, 0, time.UTC), ReviewOverdue},
	}
	for _, tt := range tests {
		if got := rs.Status(tt.now); got != tt.want {
			t.Errorf("Status(%s) = %s, want %s", tt.now.Format("2006-01-02"), got, tt.want)
		}
	}
}
