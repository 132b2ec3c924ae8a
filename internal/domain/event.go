package domain

import (
	"context"
	"fmt"
	"time"
)

// DateTimeLayout is the wire format for every timestamp exchanged with clients
// and with the statistics service. The layout carries no zone: every such
// timestamp is a UTC wall clock, and so is every TIMESTAMP column.
const DateTimeLayout = "2006-01-02 15:04:05"

// FormatTime renders t as a UTC wall clock in DateTimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// ParseTime reads a DateTimeLayout value as a UTC wall clock.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, s, time.UTC)
}

// MinLeadTime is how far in the future an event date must be when it is set.
const MinLeadTime = 2 * time.Hour

// State is the moderation state of an event.
type State string

const (
	StatePending   State = "PENDING"
	StatePublished State = "PUBLISHED"
	StateCanceled  State = "CANCELED"
)

// Event is a listed event. ConfirmedRequests and Views are derived on every read
// and never persisted.
type Event struct {
	ID                int64
	Title             string
	Annotation        string
	Description       string
	Category          Category
	Initiator         User
	Location          Location
	Paid              bool
	ParticipantLimit  int64
	RequestModeration bool
	EventDate         time.Time
	CreatedOn         time.Time
	PublishedOn       *time.Time
	State             State

	ConfirmedRequests int64
	Views             int64
}

// URI returns the path under which the statistics service tracks views of the event.
func (e *Event) URI() string {
	return EventURI(e.ID)
}

// EventURI returns the statistics URI for the given event id.
func EventURI(id int64) string {
	return fmt.Sprintf("/events/%d", id)
}

// IsInitiator reports whether userID created the event.
func (e *Event) IsInitiator(userID int64) bool {
	return e.Initiator.ID == userID
}

// ValidateEventDate fails with a validation error when date is earlier than now plus MinLeadTime.
func ValidateEventDate(date, now time.Time) error {
	if date.Before(now.Add(MinLeadTime)) {
		return NewValidationError("event date must be at least two hours from now, got %s", FormatTime(date))
	}
	return nil
}

// NewEvent is the owner's draft for a new event.
type NewEvent struct {
	Title             string
	Annotation        string
	Description       string
	CategoryID        int64
	Location          Location
	Paid              bool
	ParticipantLimit  int64
	RequestModeration bool
	EventDate         time.Time
}

// EventPatch is a partial update. Nil fields are left untouched.
type EventPatch struct {
	EventID          int64
	Title            *string
	Annotation       *string
	Description      *string
	CategoryID       *int64
	Paid             *bool
	ParticipantLimit *int64
	EventDate        *time.Time
}

// SortKey orders public event listings.
type SortKey string

const (
	SortNone      SortKey = ""
	SortEventDate SortKey = "EVENT_DATE"
	SortViews     SortKey = "VIEWS"
)

// ParseSortKey validates a sort query value. An empty string means no sorting.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortNone, SortEventDate, SortViews:
		return SortKey(s), nil
	}
	return SortNone, NewValidationError("unknown sort %q", s)
}

// EventSearch carries the raw public listing parameters.
type EventSearch struct {
	Text          string
	CategoryIDs   []int64
	Paid          *bool
	RangeStart    string
	RangeEnd      string
	OnlyAvailable bool
	Sort          SortKey
	Page          PageRequest
}

// EventFilter is the resolved repository-level search.
type EventFilter struct {
	Text        string
	CategoryIDs []int64
	Paid        *bool
	RangeStart  time.Time
	RangeEnd    time.Time
	State       State
	Page        PageRequest
}

// Hit describes the inbound request that is reported to the statistics service.
type Hit struct {
	URI string
	IP  string
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListByInitiator(ctx context.Context, initiatorID int64, page PageRequest) ([]*Event, error)
	Search(ctx context.Context, filter EventFilter) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
}

// PrivateEventService defines the owner-scoped event operations.
type PrivateEventService interface {
	ListEvents(ctx context.Context, userID int64, page PageRequest) ([]*EventShort, error)
	CreateEvent(ctx context.Context, userID int64, draft *NewEvent) (*EventFull, error)
	UpdateEvent(ctx context.Context, userID int64, patch *EventPatch) (*EventFull, error)
	ReadEvent(ctx context.Context, userID, eventID int64) (*EventFull, error)
	CancelEvent(ctx context.Context, userID, eventID int64) (*EventFull, error)
}

// PublicEventService defines the anonymous read operations.
type PublicEventService interface {
	ListEvents(ctx context.Context, search EventSearch, hit Hit) ([]*EventShort, error)
	ReadEvent(ctx context.Context, eventID int64, hit Hit) (*EventFull, error)
}
