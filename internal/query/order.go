// Package query holds the in-memory stages applied to loaded events:
// ordering, filtering, projection and reduction. Every stage returns a new
// slice and leaves its input untouched.
package query

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"example.com/eventreport/internal/domain"
)

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts RFC3339 (with or without fractional seconds),
// zone-less date-times, bare dates and epoch seconds.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	if len(s) >= 10 && isDigits(s) {
		var sec int64
		for i := 0; i < len(s); i++ {
			sec = sec*10 + int64(s[i]-'0')
		}
		return time.Unix(sec, 0).UTC(), true
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// createdKey is created_at in Unix milliseconds; missing or unparseable
// values count as the epoch.
func createdKey(e domain.Event) int64 {
	t, ok := ParseTimestamp(e.CreatedAt)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

// SortByCreatedAt returns a copy ordered by created_at, oldest first. Events
// with equal keys keep their input order.
func SortByCreatedAt(events []domain.Event) []domain.Event {
	type keyed struct {
		key int64
		ev  domain.Event
	}
	tmp := make([]keyed, len(events))
	for i, e := range events {
		tmp[i] = keyed{key: createdKey(e), ev: e}
	}
	slices.SortStableFunc(tmp, func(a, b keyed) int { return cmp.Compare(a.key, b.key) })

	out := make([]domain.Event, len(tmp))
	for i, k := range tmp {
		out[i] = k.ev
	}
	return out
}
