package pipeline

import (
	"strings"
	"time"
)

// dateLayouts are the calendar formats accepted for transaction dates and range bounds
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// ParseDate converts a transaction date string into an instant.
// The boolean is false when no known layout matches.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateBounds is a parsed inclusive date range. An unparseable bound leaves valid false.
type dateBounds struct {
	start time.Time
	end   time.Time
	valid bool
}

func parseDateBounds(start, end string) dateBounds {
	s, okStart := ParseDate(start)
	e, okEnd := ParseDate(end)
	return dateBounds{start: s, end: e, valid: okStart && okEnd}
}

// contains reports whether the record date falls within the bounds.
// Invalid record dates and invalid bounds never match.
func (b dateBounds) contains(date string) bool {
	if !b.valid {
		return false
	}
	t, ok := ParseDate(date)
	if !ok {
		return false
	}
	return !t.Before(b.start) && !t.After(b.end)
}
