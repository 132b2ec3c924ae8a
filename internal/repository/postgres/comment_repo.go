package postgres

import (
	"context"
	"database/sql"

	"eventlisting/internal/domain"
)

type commentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) domain.CommentRepository {
	return &commentRepository{DB: db}
}

func (r *commentRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Comment, error) {
	query := `
		SELECT c.id, c.text, c.event_id, c.author_id, u.name, c.created, c.state
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.event_id = $1
		ORDER BY c.created, c.id
	`
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*domain.Comment{}
	for rows.Next() {
		c := &domain.Comment{}
		var state string
		if err := rows.Scan(&c.ID, &c.Text, &c.EventID, &c.AuthorID, &c.AuthorName, &c.Created, &state); err != nil {
			return nil, err
		}
		c.State = domain.CommentState(state)
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}
