package query

import "example.com/eventreport/internal/domain"

// Selection chains the ordering and filter stages.
type Selection struct {
	SortByCreated bool
	Where         Predicate // nil keeps everything
}

// Apply runs the stages in order and returns a new slice.
func (s Selection) Apply(events []domain.Event) []domain.Event {
	out := events
	if s.SortByCreated {
		out = SortByCreatedAt(out)
	}
	return Filter(out, s.Where)
}
