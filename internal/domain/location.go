package domain

import "context"

// Location is the point where an event takes place.
type Location struct {
	ID  int64
	Lat float64
	Lon float64
}

// LocationRepository defines the interface for location storage.
type LocationRepository interface {
	Create(ctx context.Context, loc *Location) error
}
