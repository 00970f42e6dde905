package query

import "example.com/eventreport/internal/domain"

// KeyFunc derives the grouping key of an event.
type KeyFunc func(domain.Event) string

type Count struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

type Group struct {
	Key    string         `json:"key" yaml:"key"`
	Events []domain.Event `json:"events" yaml:"events"`
}

func VisitorKey(e domain.Event) string { return e.VisitorID }

func DateKey(e domain.Event) string { return e.Date }

// MinuteKey truncates created_at to the minute ("2024-10-22T05:11").
func MinuteKey(e domain.Event) string {
	if len(e.CreatedAt) > 16 {
		return e.CreatedAt[:16]
	}
	return e.CreatedAt
}

// CountBy counts events per key. Keys appear in first-seen order, so a
// sorted input yields chronological buckets.
func CountBy(events []domain.Event, key KeyFunc) []Count {
	index := make(map[string]int)
	var out []Count
	for _, e := range events {
		k := key(e)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Count{Key: k})
		}
		out[i].Count++
	}
	return out
}

// GroupBy collects events per key in first-seen key order; events inside a
// group keep input order.
func GroupBy(events []domain.Event, key KeyFunc) []Group {
	index := make(map[string]int)
	var out []Group
	for _, e := range events {
		k := key(e)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Group{Key: k})
		}
		out[i].Events = append(out[i].Events, e)
	}
	return out
}

// Top returns every entry sharing the highest count, in input order.
func Top(counts []Count) []Count {
	best := 0
	for _, c := range counts {
		if c.Count > best {
			best = c.Count
		}
	}
	var out []Count
	for _, c := range counts {
		if best > 0 && c.Count == best {
			out = append(out, c)
		}
	}
	return out
}
