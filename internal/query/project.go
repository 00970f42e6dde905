package query

import "example.com/eventreport/internal/domain"

// Narrow keeps id, name, date, the type and a few resource fields.
func Narrow(events []domain.Event) []domain.Brief {
	out := make([]domain.Brief, 0, len(events))
	for _, e := range events {
		out = append(out, e.Brief())
	}
	return out
}

// Detach drops the resource, type and visitor objects.
func Detach(events []domain.Event) []domain.Detached {
	out := make([]domain.Detached, 0, len(events))
	for _, e := range events {
		out = append(out, e.Detach())
	}
	return out
}
