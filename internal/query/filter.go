package query

import (
	"strconv"
	"strings"

	"example.com/eventreport/internal/domain"
)

// Predicate reports whether an event is kept.
type Predicate func(domain.Event) bool

// Filter returns the events matching pred, in input order.
func Filter(events []domain.Event, pred Predicate) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if pred == nil || pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// ByID keeps events whose own id field equals id.
func ByID(id string) Predicate {
	return func(e domain.Event) bool { return e.ID == id }
}

// All is the conjunction of preds; nil entries are skipped and an empty
// list keeps everything.
func All(preds ...Predicate) Predicate {
	return func(e domain.Event) bool {
		for _, p := range preds {
			if p != nil && !p(e) {
				return false
			}
		}
		return true
	}
}

// Rule is a single field condition. Field uses the event's JSON names with
// dot notation for embedded objects.
type Rule struct {
	Field    string
	Operator string // eq|ne|gt|gte|lt|lte|contains
	Value    string
}

// Match keeps events satisfying every rule.
func Match(rules []Rule) Predicate {
	if len(rules) == 0 {
		return nil
	}
	return func(e domain.Event) bool {
		for _, r := range rules {
			if !r.Matches(e) {
				return false
			}
		}
		return true
	}
}

// Matches applies the rule to one event. Unknown fields and operators never
// match.
func (r Rule) Matches(e domain.Event) bool {
	value, ok := e.Field(r.Field)
	if !ok {
		return false
	}

	switch r.Operator {
	case "eq":
		return value == r.Value
	case "ne":
		return value != r.Value
	case "gt":
		return compare(value, r.Value) > 0
	case "gte":
		return compare(value, r.Value) >= 0
	case "lt":
		return compare(value, r.Value) < 0
	case "lte":
		return compare(value, r.Value) <= 0
	case "contains":
		return strings.Contains(value, r.Value)
	default:
		return false
	}
}

// compare orders numerically when both sides are numbers, chronologically
// when both are timestamps, and lexically otherwise.
func compare(a, b string) int {
	if af, err := strconv.ParseFloat(a, 64); err == nil {
		if bf, err := strconv.ParseFloat(b, 64); err == nil {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	if at, ok := ParseTimestamp(a); ok {
		if bt, ok := ParseTimestamp(b); ok {
			return at.Compare(bt)
		}
	}
	return strings.Compare(a, b)
}
