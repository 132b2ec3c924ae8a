package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"eventlisting/internal/domain"
)

type participationRepository struct {
	DB *sql.DB
}

func NewParticipationRepository(db *sql.DB) domain.ParticipationRepository {
	return &participationRepository{
		DB: db,
	}
}

func (r *participationRepository) CountByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM participation_requests
		WHERE event_id = $1 AND status = $2
	`
	var n int64
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, eventID, string(status)).Scan(&n)
	return n, err
}

func (r *participationRepository) CountByEventsAndStatus(ctx context.Context, eventIDs []int64, status domain.RequestStatus) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}
	query := `
		SELECT event_id, COUNT(*)
		FROM participation_requests
		WHERE event_id = ANY($1) AND status = $2
		GROUP BY event_id
	`
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, pq.Array(eventIDs), string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id, n int64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}
