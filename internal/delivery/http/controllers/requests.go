package controllers

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"eventlisting/internal/domain"
)

// dateTimeRule checks that a string is a timestamp in domain.DateTimeLayout.
var dateTimeRule = validation.Date(domain.DateTimeLayout).Error("must be formatted as yyyy-MM-dd HH:mm:ss")

// LocationRequest is the location of a new event.
type LocationRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (l LocationRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Lat, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&l.Lon, validation.Min(-180.0), validation.Max(180.0)),
	)
}

// NewEventRequest is the request body for POST /users/{userId}/events.
type NewEventRequest struct {
	Annotation        string           `json:"annotation"`
	Category          int64            `json:"category"`
	Description       string           `json:"description"`
	EventDate         string           `json:"eventDate" example:"2030-01-01 19:00:00"`
	Location          *LocationRequest `json:"location"`
	Paid              bool             `json:"paid"`
	ParticipantLimit  int64            `json:"participantLimit"`
	RequestModeration *bool            `json:"requestModeration"`
	Title             string           `json:"title"`
}

// Validate implements helpers.Validator.
func (r NewEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Annotation, validation.Required, validation.Length(20, 2000)),
		validation.Field(&r.Category, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Description, validation.Required, validation.Length(20, 7000)),
		validation.Field(&r.EventDate, validation.Required, dateTimeRule),
		validation.Field(&r.Location, validation.Required),
		validation.Field(&r.ParticipantLimit, validation.Min(int64(0))),
		validation.Field(&r.Title, validation.Required, validation.Length(3, 120)),
	)
}

// ToDomain converts the validated request. RequestModeration defaults to true.
func (r NewEventRequest) ToDomain() (*domain.NewEvent, error) {
	date, err := domain.ParseTime(r.EventDate)
	if err != nil {
		return nil, domain.NewValidationError("eventDate: %v", err)
	}
	moderation := true
	if r.RequestModeration != nil {
		moderation = *r.RequestModeration
	}
	return &domain.NewEvent{
		Title:             r.Title,
		Annotation:        r.Annotation,
		Description:       r.Description,
		CategoryID:        r.Category,
		Location:          domain.Location{Lat: r.Location.Lat, Lon: r.Location.Lon},
		Paid:              r.Paid,
		ParticipantLimit:  r.ParticipantLimit,
		RequestModeration: moderation,
		EventDate:         date,
	}, nil
}

// UpdateEventRequest is the request body for PATCH /users/{userId}/events.
// Omitted fields are left unchanged.
type UpdateEventRequest struct {
	EventID          int64   `json:"eventId"`
	Annotation       *string `json:"annotation"`
	Category         *int64  `json:"category"`
	Description      *string `json:"description"`
	EventDate        *string `json:"eventDate" example:"2030-01-01 19:00:00"`
	Paid             *bool   `json:"paid"`
	ParticipantLimit *int64  `json:"participantLimit"`
	Title            *string `json:"title"`
}

// Validate implements helpers.Validator.
func (r UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EventID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Annotation, validation.NilOrNotEmpty, validation.Length(20, 2000)),
		validation.Field(&r.Category, validation.NilOrNotEmpty, validation.Min(int64(1))),
		validation.Field(&r.Description, validation.NilOrNotEmpty, validation.Length(20, 7000)),
		validation.Field(&r.EventDate, validation.NilOrNotEmpty, dateTimeRule),
		validation.Field(&r.ParticipantLimit, validation.Min(int64(0))),
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(3, 120)),
	)
}

// ToDomain converts the validated request to a patch.
func (r UpdateEventRequest) ToDomain() (*domain.EventPatch, error) {
	patch := &domain.EventPatch{
		EventID:          r.EventID,
		Title:            r.Title,
		Annotation:       r.Annotation,
		Description:      r.Description,
		CategoryID:       r.Category,
		Paid:             r.Paid,
		ParticipantLimit: r.ParticipantLimit,
	}
	if r.EventDate != nil {
		date, err := domain.ParseTime(*r.EventDate)
		if err != nil {
			return nil, domain.NewValidationError("eventDate: %v", err)
		}
		patch.EventDate = &date
	}
	return patch, nil
}
