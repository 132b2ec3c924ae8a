package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"strings"
	"text/template"

	"eventlisting/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

const subjectSuffix = "_subject.txt"

// notification is one parsed template set: subject, HTML body and text body.
type notification struct {
	subject *template.Template
	html    *htmltemplate.Template
	text    *template.Template
}

type templateRenderer struct {
	notifications map[string]notification
}

// NewTemplateRenderer parses every embedded notification once. A set is named
// after its subject file: templates/event_created_subject.txt defines
// "event_created", with event_created.html and event_created.txt beside it.
func NewTemplateRenderer() (domain.EmailTemplateRenderer, error) {
	return newTemplateRenderer(templateFS)
}

func newTemplateRenderer(fsys fs.FS) (*templateRenderer, error) {
	subjects, err := fs.Glob(fsys, "templates/*"+subjectSuffix)
	if err != nil {
		return nil, err
	}
	r := &templateRenderer{notifications: make(map[string]notification, len(subjects))}
	for _, path := range subjects {
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), subjectSuffix)
		n, err := parseNotification(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("parse %s templates: %w", name, err)
		}
		r.notifications[name] = n
	}
	return r, nil
}

func parseNotification(fsys fs.FS, name string) (notification, error) {
	var n notification
	var err error
	if n.subject, err = template.ParseFS(fsys, "templates/"+name+subjectSuffix); err != nil {
		return n, err
	}
	if n.html, err = htmltemplate.ParseFS(fsys, "templates/"+name+".html"); err != nil {
		return n, err
	}
	if n.text, err = template.ParseFS(fsys, "templates/"+name+".txt"); err != nil {
		return n, err
	}
	return n, nil
}

// Render fills the named notification with data. The subject is trimmed to a single line.
func (r *templateRenderer) Render(templateName string, data *domain.EventEmailData) (*domain.EmailContent, error) {
	n, ok := r.notifications[templateName]
	if !ok {
		return nil, fmt.Errorf("unknown email template %q", templateName)
	}
	var subject, html, text bytes.Buffer
	if err := n.subject.Execute(&subject, data); err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	if err := n.html.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	if err := n.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	return &domain.EmailContent{
		Subject: strings.Join(strings.Fields(subject.String()), " "),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
