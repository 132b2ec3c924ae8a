package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"eventlisting/internal/domain"
)

const eventColumns = `
	e.id, e.title, e.annotation, e.description, e.paid, e.participant_limit, e.request_moderation,
	e.event_date, e.created_on, e.published_on, e.state,
	c.id, c.name, u.id, u.name, u.email, l.id, l.lat, l.lon`

const eventFrom = `
	FROM events e
	JOIN categories c ON c.id = e.category_id
	JOIN users u ON u.id = e.initiator_id
	JOIN locations l ON l.id = e.location_id`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var publishedOn sql.NullTime
	var state string
	err := row.Scan(
		&e.ID, &e.Title, &e.Annotation, &e.Description, &e.Paid, &e.ParticipantLimit, &e.RequestModeration,
		&e.EventDate, &e.CreatedOn, &publishedOn, &state,
		&e.Category.ID, &e.Category.Name, &e.Initiator.ID, &e.Initiator.Name, &e.Initiator.Email,
		&e.Location.ID, &e.Location.Lat, &e.Location.Lon,
	)
	if err != nil {
		return nil, err
	}
	e.EventDate = e.EventDate.UTC()
	e.CreatedOn = e.CreatedOn.UTC()
	if publishedOn.Valid {
		t := publishedOn.Time.UTC()
		e.PublishedOn = &t
	}
	e.State = domain.State(state)
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, annotation, description, category_id, initiator_id, location_id,
			paid, participant_limit, request_moderation, event_date, created_on, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return conn(ctx, r.DB).QueryRowContext(ctx, query,
		e.Title, e.Annotation, e.Description, e.Category.ID, e.Initiator.ID, e.Location.ID,
		e.Paid, e.ParticipantLimit, e.RequestModeration, e.EventDate.UTC(), e.CreatedOn.UTC(), string(e.State),
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT` + eventColumns + eventFrom + `
	WHERE e.id = $1`
	e, err := scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("event with id=%d was not found", id)
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := conn(ctx, r.DB).QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *eventRepository) ListByInitiator(ctx context.Context, initiatorID int64, page domain.PageRequest) ([]*domain.Event, error) {
	query := `SELECT` + eventColumns + eventFrom + `
	WHERE e.initiator_id = $1
	ORDER BY e.id
	LIMIT $2 OFFSET $3`
	return r.list(ctx, query, initiatorID, page.Limit(), page.Offset())
}

func (r *eventRepository) Search(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	where := []string{"e.event_date BETWEEN $1 AND $2"}
	args := []any{f.RangeStart.UTC(), f.RangeEnd.UTC()}
	n := 3
	if f.Text != "" {
		where = append(where, fmt.Sprintf("(e.annotation ILIKE $%d OR e.description ILIKE $%d)", n, n))
		args = append(args, "%"+f.Text+"%")
		n++
	}
	if len(f.CategoryIDs) > 0 {
		where = append(where, fmt.Sprintf("e.category_id = ANY($%d)", n))
		args = append(args, pq.Array(f.CategoryIDs))
		n++
	}
	if f.Paid != nil {
		where = append(where, fmt.Sprintf("e.paid = $%d", n))
		args = append(args, *f.Paid)
		n++
	}
	if f.State != "" {
		where = append(where, fmt.Sprintf("e.state = $%d", n))
		args = append(args, string(f.State))
		n++
	}
	args = append(args, f.Page.Limit(), f.Page.Offset())
	query := fmt.Sprintf(`SELECT%s%s
	WHERE %s
	ORDER BY e.id
	LIMIT $%d OFFSET $%d`, eventColumns, eventFrom, strings.Join(where, " AND "), n, n+1)
	return r.list(ctx, query, args...)
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, annotation = $2, description = $3, category_id = $4, paid = $5,
			participant_limit = $6, request_moderation = $7, event_date = $8, published_on = $9, state = $10
		WHERE id = $11
	`
	var publishedOn sql.NullTime
	if e.PublishedOn != nil {
		publishedOn = sql.NullTime{Time: e.PublishedOn.UTC(), Valid: true}
	}
	result, err := conn(ctx, r.DB).ExecContext(ctx, query,
		e.Title, e.Annotation, e.Description, e.Category.ID, e.Paid,
		e.ParticipantLimit, e.RequestModeration, e.EventDate.UTC(), publishedOn, string(e.State), e.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.NewNotFoundError("event with id=%d was not found", e.ID)
	}
	return nil
}
