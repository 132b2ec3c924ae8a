package domain

import (
	"context"
	"time"
)

// RequestStatus is the status of a participation request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestConfirmed RequestStatus = "CONFIRMED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestCanceled  RequestStatus = "CANCELED"
)

// ParticipationRequest is a user's request to attend an event.
type ParticipationRequest struct {
	ID          int64
	EventID     int64
	RequesterID int64
	Created     time.Time
	Status      RequestStatus
}

// ParticipationRepository exposes the aggregate reads the event core needs.
type ParticipationRepository interface {
	// CountByEventAndStatus returns the number of requests for one event in the given status.
	CountByEventAndStatus(ctx context.Context, eventID int64, status RequestStatus) (int64, error)
	// CountByEventsAndStatus returns per-event counts for the given events. Events without
	// requests in that status are absent from the map.
	CountByEventsAndStatus(ctx context.Context, eventIDs []int64, status RequestStatus) (map[int64]int64, error)
}
