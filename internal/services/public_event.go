package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"eventlisting/internal/domain"
)

// maxRangeEnd is the upper bound of a public search without rangeEnd.
var maxRangeEnd = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

type publicEventService struct {
	eventRepo         domain.EventRepository
	participationRepo domain.ParticipationRepository
	stats             domain.StatisticsGateway
	logger            *slog.Logger
	contextTimeout    time.Duration
	now               func() time.Time
}

// NewPublicEventService returns the anonymous event reads. Every read is reported to stats as a hit.
func NewPublicEventService(
	eventRepo domain.EventRepository,
	participationRepo domain.ParticipationRepository,
	stats domain.StatisticsGateway,
	logger *slog.Logger,
	timeout time.Duration,
) domain.PublicEventService {
	return &publicEventService{
		eventRepo:         eventRepo,
		participationRepo: participationRepo,
		stats:             stats,
		logger:            logger,
		contextTimeout:    timeout,
		now:               time.Now,
	}
}

func (s *publicEventService) ListEvents(ctx context.Context, search domain.EventSearch, hit domain.Hit) ([]*domain.EventShort, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.stats.RecordHit(ctx, hit)

	now := s.now().UTC()
	start, err := parseRangeBound("rangeStart", search.RangeStart, now)
	if err != nil {
		return nil, err
	}
	end, err := parseRangeBound("rangeEnd", search.RangeEnd, maxRangeEnd)
	if err != nil {
		return nil, err
	}

	found, err := s.eventRepo.Search(ctx, domain.EventFilter{
		Text:        search.Text,
		CategoryIDs: search.CategoryIDs,
		Paid:        search.Paid,
		RangeStart:  start,
		RangeEnd:    end,
		State:       domain.StatePublished,
		Page:        search.Page,
	})
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	events := make([]*domain.Event, 0, len(found))
	for _, e := range found {
		if e.State == domain.StatePublished {
			events = append(events, e)
		}
	}

	if err := fillConfirmed(ctx, s.participationRepo, events); err != nil {
		return nil, err
	}
	s.fillViewsSinceCreation(ctx, events, now)

	switch search.Sort {
	case domain.SortEventDate:
		sort.SliceStable(events, func(i, j int) bool { return events[i].EventDate.Before(events[j].EventDate) })
	case domain.SortViews:
		sort.SliceStable(events, func(i, j int) bool { return events[i].Views < events[j].Views })
	}

	out := make([]*domain.EventShort, 0, len(events))
	for _, e := range events {
		if search.OnlyAvailable && e.ConfirmedRequests > e.ParticipantLimit {
			continue
		}
		out = append(out, domain.ToEventShort(e))
	}
	return out, nil
}

// fillViewsSinceCreation counts each event's hits with one query that starts
// at the earliest creation time of the page.
func (s *publicEventService) fillViewsSinceCreation(ctx context.Context, events []*domain.Event, now time.Time) {
	if len(events) == 0 {
		return
	}
	start := events[0].CreatedOn
	for _, e := range events[1:] {
		if e.CreatedOn.Before(start) {
			start = e.CreatedOn
		}
	}
	stats, err := s.stats.QueryViews(ctx, start, now, eventURIs(events), false)
	if err != nil {
		s.logger.WarnContext(ctx, "views unavailable, using zero", "events", len(events), "error", err)
	}
	applyViews(events, stats)
}

func (s *publicEventService) ReadEvent(ctx context.Context, eventID int64, hit domain.Hit) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.stats.RecordHit(ctx, hit)

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.State != domain.StatePublished {
		return nil, domain.NewValidationError("event id=%d is not published", eventID)
	}
	event.ConfirmedRequests, err = s.participationRepo.CountByEventAndStatus(ctx, eventID, domain.RequestConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed requests: %w", err)
	}
	event.Views, err = s.stats.ViewsForSingleEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return domain.ToEventFull(event), nil
}

func parseRangeBound(name, value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	t, err := domain.ParseTime(value)
	if err != nil {
		return time.Time{}, domain.NewValidationError("%s must match %q, got %q", name, domain.DateTimeLayout, value)
	}
	return t, nil
}
