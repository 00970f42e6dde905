package domain

// Brief is the narrow view of an event used for quick inspection.
type Brief struct {
	ID       string        `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Date     string        `json:"date" yaml:"date"`
	Type     Type          `json:"type" yaml:"type"`
	Resource ResourceBrief `json:"resource" yaml:"resource"`
}

type ResourceBrief struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Location  string `json:"location" yaml:"location"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// Detached is an event without its resource, type and visitor objects.
// Every other field is carried over unchanged.
type Detached struct {
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
}

func (e Event) Brief() Brief {
	return Brief{
		ID:   e.ID,
		Name: e.Name,
		Date: e.Date,
		Type: Type{ID: e.Type.ID, Name: e.Type.Name},
		Resource: ResourceBrief{
			ID:        e.Resource.ID,
			Name:      e.Resource.Name,
			Location:  e.Resource.Location,
			CreatedAt: e.Resource.CreatedAt,
		},
	}
}

func (e Event) Detach() Detached {
	return Detached{
		ID:            e.ID,
		ConferenceID:  e.ConferenceID,
		VisitorID:     e.VisitorID,
		UserID:        e.UserID,
		TypeID:        e.TypeID,
		Name:          e.Name,
		TxID:          e.TxID,
		IsTxCompleted: e.IsTxCompleted,
		IsHided:       e.IsHided,
		Date:          e.Date,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
		Conference:    e.Conference,
	}
}
