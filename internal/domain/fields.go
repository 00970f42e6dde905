package domain

import (
	"strconv"
	"strings"
)

// Field returns the value of a field addressed by its JSON name, using dot
// notation for embedded objects ("resource.location"). Booleans are rendered
// as "true"/"false". ok is false for unknown names; a null origin_deleted_at
// reports ok with an empty value.
func (e Event) Field(name string) (string, bool) {
	head, rest, nested := strings.Cut(strings.TrimSpace(name), ".")
	if !nested {
		switch head {
		case "id":
			return e.ID, true
		case "conference_id":
			return e.ConferenceID, true
		case "visitor_id":
			return e.VisitorID, true
		case "user_id":
			return e.UserID, true
		case "type_id":
			return e.TypeID, true
		case "name":
			return e.Name, true
		case "tx_id":
			return e.TxID, true
		case "is_tx_completed":
			return strconv.FormatBool(e.IsTxCompleted), true
		case "is_hided":
			return strconv.FormatBool(e.IsHided), true
		case "date":
			return e.Date, true
		case "created_at":
			return e.CreatedAt, true
		case "updated_at":
			return e.UpdatedAt, true
		}
		return "", false
	}

	switch head {
	case "conference":
		switch rest {
		case "id":
			return e.Conference.ID, true
		case "conference_key":
			return e.Conference.ConferenceKey, true
		}
	case "visitor":
		switch rest {
		case "id":
			return e.Visitor.ID, true
		case "visitor_key":
			return e.Visitor.VisitorKey, true
		}
	case "type":
		switch rest {
		case "id":
			return e.Type.ID, true
		case "name":
			return e.Type.Name, true
		}
	case "resource":
		return e.Resource.field(rest)
	}
	return "", false
}

func (r Resource) field(name string) (string, bool) {
	switch name {
	case "id":
		return r.ID, true
	case "organizer_id":
		return r.OrganizerID, true
	case "conference_key":
		return r.ConferenceKey, true
	case "state":
		return r.State, true
	case "name":
		return r.Name, true
	case "location":
		return r.Location, true
	case "hosts":
		return r.Hosts, true
	case "organizers":
		return r.Organizers, true
	case "sponsors":
		return r.Sponsors, true
	case "display_item":
		return r.DisplayItem, true
	case "homepage":
		return r.Homepage, true
	case "booth_info_link":
		return r.BoothInfoLink, true
	case "lecture_info_link":
		return r.LectureInfoLink, true
	case "start_time":
		return r.StartTime, true
	case "end_time":
		return r.EndTime, true
	case "origin_deleted":
		return strconv.FormatBool(r.OriginDeleted), true
	case "origin_deleted_at":
		if r.OriginDeletedAt == nil {
			return "", true
		}
		return *r.OriginDeletedAt, true
	case "created_at":
		return r.CreatedAt, true
	case "updated_at":
		return r.UpdatedAt, true
	}
	return "", false
}
