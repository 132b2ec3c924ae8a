package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventlisting/internal/domain"
	"eventlisting/internal/metrics"
)

const (
	templateEventCreated  = "event_created"
	templateEventCanceled = "event_canceled"
)

type eventNotifier struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewEventNotifier returns an EventNotifier that renders the event templates and sends them with mailer.
// m may be nil.
func NewEventNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, m *metrics.Metrics, logger *slog.Logger) domain.EventNotifier {
	return &eventNotifier{mailer: mailer, renderer: renderer, metrics: m, logger: logger}
}

func (n *eventNotifier) EventCreated(ctx context.Context, initiator *domain.User, event *domain.Event) error {
	return n.send(ctx, templateEventCreated, initiator, event)
}

func (n *eventNotifier) EventCanceled(ctx context.Context, initiator *domain.User, event *domain.Event) error {
	return n.send(ctx, templateEventCanceled, initiator, event)
}

func (n *eventNotifier) send(ctx context.Context, template string, initiator *domain.User, event *domain.Event) (err error) {
	defer func() { n.metrics.ObserveNotification(template, err) }()

	if initiator == nil || initiator.Email == "" {
		return fmt.Errorf("%s: initiator has no email", template)
	}
	data := &domain.EventEmailData{
		Email:         initiator.Email,
		InitiatorName: initiator.Name,
		EventID:       event.ID,
		Title:         event.Title,
		EventDate:     domain.FormatTime(event.EventDate),
		State:         event.State,
	}
	content, err := n.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", template, err)
	}
	if err := n.mailer.Send(ctx, data.Email, content.Subject, content.HTML, content.Text); err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	n.logger.InfoContext(ctx, "notification sent", "template", template, "event_id", event.ID)
	return nil
}
