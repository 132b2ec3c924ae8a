package domain

// CategoryDTO is the wire form of a category.
// swagger:model CategoryDTO
type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserShort is the wire form of an event initiator.
// swagger:model UserShort
type UserShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LocationDTO is the wire form of an event location.
// swagger:model LocationDTO
type LocationDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// EventShort is the summary representation used by listings.
// swagger:model EventShort
type EventShort struct {
	Annotation        string      `json:"annotation"`
	Category          CategoryDTO `json:"category"`
	ConfirmedRequests int64       `json:"confirmedRequests"`
	ParticipantLimit  int64       `json:"participantLimit"`
	EventDate         string      `json:"eventDate"`
	ID                int64       `json:"id"`
	Initiator         UserShort   `json:"initiator"`
	Paid              bool        `json:"paid"`
	Title             string      `json:"title"`
	Views             int64       `json:"views"`
}

// EventFull is the detailed representation of a single event.
// swagger:model EventFull
type EventFull struct {
	Annotation        string      `json:"annotation"`
	Category          CategoryDTO `json:"category"`
	ConfirmedRequests int64       `json:"confirmedRequests"`
	CreatedOn         string      `json:"createdOn"`
	Description       string      `json:"description"`
	EventDate         string      `json:"eventDate"`
	ID                int64       `json:"id"`
	Initiator         UserShort   `json:"initiator"`
	Location          LocationDTO `json:"location"`
	Paid              bool        `json:"paid"`
	ParticipantLimit  int64       `json:"participantLimit"`
	PublishedOn       *string     `json:"publishedOn"`
	RequestModeration bool        `json:"requestModeration"`
	State             State       `json:"state"`
	Title             string      `json:"title"`
	Views             int64       `json:"views"`
}

// ToEventShort maps an event to its summary form.
func ToEventShort(e *Event) *EventShort {
	return &EventShort{
		Annotation:        e.Annotation,
		Category:          CategoryDTO{ID: e.Category.ID, Name: e.Category.Name},
		ConfirmedRequests: e.ConfirmedRequests,
		ParticipantLimit:  e.ParticipantLimit,
		EventDate:         FormatTime(e.EventDate),
		ID:                e.ID,
		Initiator:         UserShort{ID: e.Initiator.ID, Name: e.Initiator.Name},
		Paid:              e.Paid,
		Title:             e.Title,
		Views:             e.Views,
	}
}

// ToEventFull maps an event to its detailed form.
func ToEventFull(e *Event) *EventFull {
	full := &EventFull{
		Annotation:        e.Annotation,
		Category:          CategoryDTO{ID: e.Category.ID, Name: e.Category.Name},
		ConfirmedRequests: e.ConfirmedRequests,
		CreatedOn:         FormatTime(e.CreatedOn),
		Description:       e.Description,
		EventDate:         FormatTime(e.EventDate),
		ID:                e.ID,
		Initiator:         UserShort{ID: e.Initiator.ID, Name: e.Initiator.Name},
		Location:          LocationDTO{Lat: e.Location.Lat, Lon: e.Location.Lon},
		Paid:              e.Paid,
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		State:             e.State,
		Title:             e.Title,
		Views:             e.Views,
	}
	if e.PublishedOn != nil {
		s := FormatTime(*e.PublishedOn)
		full.PublishedOn = &s
	}
	return full
}
