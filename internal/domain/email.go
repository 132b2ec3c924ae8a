package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailContent is a rendered email.
type EmailContent struct {
	Subject string
	HTML    string
	Text    string
}

// EmailTemplateRenderer renders an owner notification from a named template.
type EmailTemplateRenderer interface {
	Render(templateName string, data *EventEmailData) (*EmailContent, error)
}

// EventEmailData holds data for the owner notification emails.
type EventEmailData struct {
	Email         string
	InitiatorName string
	EventID       int64
	Title         string
	EventDate     string
	State         State
}

// EventNotifier tells an initiator about changes to their event.
type EventNotifier interface {
	EventCreated(ctx context.Context, initiator *User, event *Event) error
	EventCanceled(ctx context.Context, initiator *User, event *Event) error
}
