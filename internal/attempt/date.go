package attempt

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the storage and CLI format for calendar dates.
const DateLayout = "2006-01-02"

// Day returns the calendar date of t as midnight UTC. The year, month and
// day are taken from t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", s)}
	}
	return t, nil
}

// FormatDate renders the calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return Day(t).Format(DateLayout)
}

// DaysBetween returns the number of whole calendar days from "from" to "to".
// The result is negative when "to" is earlier than "from".
func DaysBetween(from, to time.Time) int {
	return int(math.Round(Day(to).Sub(Day(from)).Hours() / 24))
}

// AddDays returns the calendar date n days after the calendar date of t.
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}
