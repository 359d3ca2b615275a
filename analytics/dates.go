package analytics

import (
	"strings"
	"time"
)

// dateLayouts are tried in order when reading a transaction date. Only the
// calendar date is kept; any time of day is dropped.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateTime,
}

// parseDate returns the calendar date of s at midnight in loc.
// ok is false when s matches none of the accepted layouts.
func parseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}

// monthRange returns the first and last day of the month that is offset
// months away from the month containing now.
func monthRange(now time.Time, offset int) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, -1)
	return start, end
}

func within(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// inMonth reports whether the transaction date falls inside [start, end].
// Unparseable dates are never inside any range.
func inMonth(t Transaction, start, end time.Time) bool {
	d, ok := parseDate(t.TransactionDate, start.Location())
	if !ok {
		return false
	}
	return within(d, start, end)
}
