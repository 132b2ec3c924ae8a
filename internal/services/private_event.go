package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventlisting/internal/domain"
)

// EventStores groups the repositories the event services read and write.
type EventStores struct {
	Events         domain.EventRepository
	Users          domain.UserRepository
	Categories     domain.CategoryRepository
	Locations      domain.LocationRepository
	Participations domain.ParticipationRepository
}

type privateEventService struct {
	tx             domain.Transactor
	stores         EventStores
	stats          domain.StatisticsGateway
	notifier       domain.EventNotifier
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewPrivateEventService returns the owner-scoped event operations.
func NewPrivateEventService(
	tx domain.Transactor,
	stores EventStores,
	stats domain.StatisticsGateway,
	notifier domain.EventNotifier,
	logger *slog.Logger,
	timeout time.Duration,
) domain.PrivateEventService {
	return &privateEventService{
		tx:             tx,
		stores:         stores,
		stats:          stats,
		notifier:       notifier,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *privateEventService) ListEvents(ctx context.Context, userID int64, page domain.PageRequest) ([]*domain.EventShort, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.stores.Events.ListByInitiator(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("list events by initiator: %w", err)
	}
	events = s.stats.ViewsForManyEvents(ctx, events)
	if err := fillConfirmed(ctx, s.stores.Participations, events); err != nil {
		return nil, err
	}
	out := make([]*domain.EventShort, 0, len(events))
	for _, e := range events {
		out = append(out, domain.ToEventShort(e))
	}
	return out, nil
}

func (s *privateEventService) CreateEvent(ctx context.Context, userID int64, draft *domain.NewEvent) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now().UTC()
	if err := domain.ValidateEventDate(draft.EventDate, now); err != nil {
		return nil, err
	}

	var event *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		initiator, err := s.stores.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		category, err := s.stores.Categories.GetByID(ctx, draft.CategoryID)
		if err != nil {
			return err
		}
		location := draft.Location
		if err := s.stores.Locations.Create(ctx, &location); err != nil {
			return fmt.Errorf("save location: %w", err)
		}
		event = &domain.Event{
			Title:             draft.Title,
			Annotation:        draft.Annotation,
			Description:       draft.Description,
			Category:          *category,
			Initiator:         *initiator,
			Location:          location,
			Paid:              draft.Paid,
			ParticipantLimit:  draft.ParticipantLimit,
			RequestModeration: draft.RequestModeration,
			EventDate:         draft.EventDate,
			CreatedOn:         now,
			State:             domain.StatePending,
		}
		if err := s.stores.Events.Create(ctx, event); err != nil {
			return fmt.Errorf("save event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "event created", "event_id", event.ID, "user_id", userID)

	if err := s.notifier.EventCreated(ctx, &event.Initiator, event); err != nil {
		s.logger.WarnContext(ctx, "event created notification failed", "event_id", event.ID, "error", err)
	}
	return domain.ToEventFull(event), nil
}

func (s *privateEventService) UpdateEvent(ctx context.Context, userID int64, patch *domain.EventPatch) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var event *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		event, err = s.stores.Events.GetByID(ctx, patch.EventID)
		if err != nil {
			return err
		}
		if !event.IsInitiator(userID) {
			return domain.NewValidationError("only the initiator can update event id=%d", event.ID)
		}
		if event.State == domain.StatePublished {
			return domain.NewValidationError("published event id=%d cannot be updated", event.ID)
		}
		if err := s.applyPatch(ctx, event, patch); err != nil {
			return err
		}
		event.ConfirmedRequests, err = s.stores.Participations.CountByEventAndStatus(ctx, event.ID, domain.RequestConfirmed)
		if err != nil {
			return fmt.Errorf("count confirmed requests: %w", err)
		}
		if err := s.stores.Events.Update(ctx, event); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	event.Views, err = s.stats.ViewsForSingleEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "event updated", "event_id", event.ID, "user_id", userID)
	return domain.ToEventFull(event), nil
}

// applyPatch copies every non-nil field of patch onto event. A new date must
// respect the minimum lead time.
func (s *privateEventService) applyPatch(ctx context.Context, event *domain.Event, patch *domain.EventPatch) error {
	if patch.Annotation != nil {
		event.Annotation = *patch.Annotation
	}
	if patch.CategoryID != nil {
		category, err := s.stores.Categories.GetByID(ctx, *patch.CategoryID)
		if err != nil {
			return err
		}
		event.Category = *category
	}
	if patch.EventDate != nil {
		if err := domain.ValidateEventDate(*patch.EventDate, s.now().UTC()); err != nil {
			return err
		}
		event.EventDate = *patch.EventDate
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Paid != nil {
		event.Paid = *patch.Paid
	}
	if patch.ParticipantLimit != nil {
		event.ParticipantLimit = *patch.ParticipantLimit
	}
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	return nil
}

func (s *privateEventService) ReadEvent(ctx context.Context, userID, eventID int64) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.stores.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsInitiator(userID) {
		return nil, domain.NewForbiddenError("only the initiator can view event id=%d", eventID)
	}
	event.Views, err = s.stats.ViewsForSingleEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	event.ConfirmedRequests, err = s.stores.Participations.CountByEventAndStatus(ctx, eventID, domain.RequestConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed requests: %w", err)
	}
	return domain.ToEventFull(event), nil
}

func (s *privateEventService) CancelEvent(ctx context.Context, userID, eventID int64) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var event *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		event, err = s.stores.Events.GetByID(ctx, eventID)
		if err != nil {
			return err
		}
		if !event.IsInitiator(userID) {
			return domain.NewForbiddenError("only the initiator can cancel event id=%d", eventID)
		}
		event.State = domain.StateCanceled
		if err := s.stores.Events.Update(ctx, event); err != nil {
			return fmt.Errorf("cancel event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	event.Views, err = s.stats.ViewsForSingleEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "event canceled", "event_id", eventID, "user_id", userID)

	if err := s.notifier.EventCanceled(ctx, &event.Initiator, event); err != nil {
		s.logger.WarnContext(ctx, "event canceled notification failed", "event_id", eventID, "error", err)
	}
	return domain.ToEventFull(event), nil
}

// fillConfirmed sets ConfirmedRequests on every event with one grouped count query.
func fillConfirmed(ctx context.Context, repo domain.ParticipationRepository, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	counts, err := repo.CountByEventsAndStatus(ctx, ids, domain.RequestConfirmed)
	if err != nil {
		return fmt.Errorf("count confirmed requests: %w", err)
	}
	for _, e := range events {
		e.ConfirmedRequests = counts[e.ID]
	}
	return nil
}
