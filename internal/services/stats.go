package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventlisting/internal/domain"
)

// viewsWindow is how far back ViewsForManyEvents counts hits.
const viewsWindow = 365 * 24 * time.Hour

type statsGateway struct {
	client    domain.StatsClient
	eventRepo domain.EventRepository
	app       string
	logger    *slog.Logger
	now       func() time.Time
}

// NewStatisticsGateway returns a StatisticsGateway that reports hits under app.
func NewStatisticsGateway(client domain.StatsClient, eventRepo domain.EventRepository, app string, logger *slog.Logger) domain.StatisticsGateway {
	return &statsGateway{
		client:    client,
		eventRepo: eventRepo,
		app:       app,
		logger:    logger,
		now:       time.Now,
	}
}

// RecordHit reports a view. Failures are logged and never returned.
func (g *statsGateway) RecordHit(ctx context.Context, hit domain.Hit) {
	err := g.client.Hit(ctx, domain.EndpointHit{
		App:       g.app,
		URI:       hit.URI,
		IP:        hit.IP,
		Timestamp: domain.FormatTime(g.now()),
	})
	if err != nil {
		g.logger.WarnContext(ctx, "failed to record hit", "uri", hit.URI, "error", err)
	}
}

func (g *statsGateway) QueryViews(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]domain.ViewStats, error) {
	stats, err := g.client.Stats(ctx, domain.StatsQuery{
		Start:  start,
		End:    end,
		URIs:   uris,
		Unique: unique,
	})
	if err != nil {
		return nil, fmt.Errorf("query views: %w", err)
	}
	return stats, nil
}

func (g *statsGateway) ViewsForSingleEvent(ctx context.Context, eventID int64) (int64, error) {
	event, err := g.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return 0, err
	}
	return g.viewsSince(ctx, event), nil
}

// viewsSince returns the hits of event since its creation, or 0 when the
// statistics service has no row for it or cannot be reached.
func (g *statsGateway) viewsSince(ctx context.Context, event *domain.Event) int64 {
	stats, err := g.QueryViews(ctx, event.CreatedOn, g.now().UTC(), []string{event.URI()}, false)
	if err != nil {
		g.logger.WarnContext(ctx, "views unavailable, using zero", "event_id", event.ID, "error", err)
		return 0
	}
	if len(stats) == 0 {
		return 0
	}
	return stats[0].Hits
}

// ViewsForManyEvents sets Views on every event from a single statistics query
// over the last year. Events without a matching row get 0.
func (g *statsGateway) ViewsForManyEvents(ctx context.Context, events []*domain.Event) []*domain.Event {
	if len(events) == 0 {
		return events
	}
	now := g.now().UTC()
	g.fillViews(ctx, events, now.Add(-viewsWindow), now)
	return events
}

// fillViews queries [start, end] once for all events and joins the hits back by URI.
func (g *statsGateway) fillViews(ctx context.Context, events []*domain.Event, start, end time.Time) {
	stats, err := g.QueryViews(ctx, start, end, eventURIs(events), false)
	if err != nil {
		g.logger.WarnContext(ctx, "views unavailable, using zero", "events", len(events), "error", err)
	}
	applyViews(events, stats)
}

func eventURIs(events []*domain.Event) []string {
	uris := make([]string, 0, len(events))
	for _, e := range events {
		uris = append(uris, e.URI())
	}
	return uris
}

// applyViews sets Views on each event from the row with its URI, or 0.
func applyViews(events []*domain.Event, stats []domain.ViewStats) {
	hits := make(map[string]int64, len(stats))
	for _, s := range stats {
		hits[s.URI] = s.Hits
	}
	for _, e := range events {
		e.Views = hits[e.URI()]
	}
}
