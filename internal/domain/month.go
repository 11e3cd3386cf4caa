package domain

import (
	"fmt"
	"time"
)

// MonthLayout is the textual form of a survey month, e.g. "2020-03".
const MonthLayout = "2006-01"

// ParseMonth parses a "YYYY-MM" string into its canonical month value:
// midnight UTC on the first day of that month.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return t.UTC(), nil
}

// MonthOf normalizes an arbitrary timestamp to its canonical month value.
func MonthOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthRange expands an inclusive start..end pair into the ordered list of
// canonical months it covers. Inputs are normalized first, so mid-month
// timestamps are accepted.
func MonthRange(start, end time.Time) ([]time.Time, error) {
	start, end = MonthOf(start), MonthOf(end)
	if end.Before(start) {
		return nil, &ValidationError{
			Param:  "months",
			Reason: fmt.Sprintf("end month %s precedes start month %s", end.Format(MonthLayout), start.Format(MonthLayout)),
		}
	}

	var months []time.Time
	for m := start; !m.After(end); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months, nil
}
