package domain

import (
	"context"
	"time"
)

// EndpointHit is a single recorded view sent to the statistics service.
type EndpointHit struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

// ViewStats is an aggregated hit count for one URI, as returned by the statistics service.
type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

// StatsQuery selects the hits to aggregate.
type StatsQuery struct {
	Start  time.Time
	End    time.Time
	URIs   []string
	Unique bool
}

// StatsClient is the transport to the external statistics service.
type StatsClient interface {
	Hit(ctx context.Context, hit EndpointHit) error
	Stats(ctx context.Context, query StatsQuery) ([]ViewStats, error)
}

// StatisticsGateway records hits and resolves view counts for events.
type StatisticsGateway interface {
	RecordHit(ctx context.Context, hit Hit)
	QueryViews(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]ViewStats, error)
	ViewsForSingleEvent(ctx context.Context, eventID int64) (int64, error)
	ViewsForManyEvents(ctx context.Context, events []*Event) []*Event
}
