package domain

// Event is a visitor interaction recorded at a conference.
// created_at and updated_at are kept as the raw strings found in the export.
type Event struct {
	ID            string     `json:"id" yaml:"id"`
	ConferenceID  string     `json:"conference_id" yaml:"conference_id"`
	VisitorID     string     `json:"visitor_id" yaml:"visitor_id"`
	UserID        string     `json:"user_id" yaml:"user_id"`
	TypeID        string     `json:"type_id" yaml:"type_id"`
	Name          string     `json:"name" yaml:"name"`
	TxID          string     `json:"tx_id" yaml:"tx_id"`
	IsTxCompleted bool       `json:"is_tx_completed" yaml:"is_tx_completed"`
	IsHided       bool       `json:"is_hided" yaml:"is_hided"`
	Date          string     `json:"date" yaml:"date"`
	CreatedAt     string     `json:"created_at" yaml:"created_at"`
	UpdatedAt     string     `json:"updated_at" yaml:"updated_at"`
	Conference    Conference `json:"conference" yaml:"conference"`
	Visitor       Visitor    `json:"visitor" yaml:"visitor"`
	Type          Type       `json:"type" yaml:"type"`
	Resource      Resource   `json:"resource" yaml:"resource"`
}

type Conference struct {
	ID            string `json:"id" yaml:"id"`
	ConferenceKey string `json:"conference_key" yaml:"conference_key"`
}

type Visitor struct {
	ID         string `json:"id" yaml:"id"`
	VisitorKey string `json:"visitor_key" yaml:"visitor_key"`
}

type Type struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Resource is the booth, session or lecture an event points at.
type Resource struct {
	ID              string  `json:"id" yaml:"id"`
	OrganizerID     string  `json:"organizer_id" yaml:"organizer_id"`
	ConferenceKey   string  `json:"conference_key" yaml:"conference_key"`
	State           string  `json:"state" yaml:"state"`
	Name            string  `json:"name" yaml:"name"`
	Location        string  `json:"location" yaml:"location"`
	Hosts           string  `json:"hosts" yaml:"hosts"`
	Organizers      string  `json:"organizers" yaml:"organizers"`
	Sponsors        string  `json:"sponsors" yaml:"sponsors"`
	DisplayItem     string  `json:"display_item" yaml:"display_item"`
	Homepage        string  `json:"homepage" yaml:"homepage"`
	BoothInfoLink   string  `json:"booth_info_link" yaml:"booth_info_link"`
	LectureInfoLink string  `json:"lecture_info_link" yaml:"lecture_info_link"`
	StartTime       string  `json:"start_time" yaml:"start_time"`
	EndTime         string  `json:"end_time" yaml:"end_time"`
	OriginDeleted   bool    `json:"origin_deleted" yaml:"origin_deleted"`
	OriginDeletedAt *string `json:"origin_deleted_at" yaml:"origin_deleted_at"`
	CreatedAt       string  `json:"created_at" yaml:"created_at"`
	UpdatedAt       string  `json:"updated_at" yaml:"updated_at"`
}
