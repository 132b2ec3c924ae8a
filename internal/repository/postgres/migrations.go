package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Migrate creates the schema if it does not exist. Statements are idempotent.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	migrations := []string{
		createUsersTable,
		createCategoriesTable,
		createLocationsTable,
		createEventsTable,
		createParticipationRequestsTable,
		createCommentsTable,
		createEventsIndexes,
	}
	for i, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	logger.Info("migrations applied", "count", len(migrations))
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(250) NOT NULL,
	email VARCHAR(254) NOT NULL UNIQUE
);`

const createCategoriesTable = `
CREATE TABLE IF NOT EXISTS categories (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL UNIQUE
);`

const createLocationsTable = `
CREATE TABLE IF NOT EXISTS locations (
	id BIGSERIAL PRIMARY KEY,
	lat DOUBLE PRECISION NOT NULL,
	lon DOUBLE PRECISION NOT NULL
);`

const createEventsTable = `
CREATE TABLE IF NOT EXISTS events (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(120) NOT NULL,
	annotation VARCHAR(2000) NOT NULL,
	description VARCHAR(7000) NOT NULL,
	category_id BIGINT NOT NULL REFERENCES categories(id),
	initiator_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	location_id BIGINT NOT NULL REFERENCES locations(id),
	paid BOOLEAN NOT NULL DEFAULT FALSE,
	participant_limit BIGINT NOT NULL DEFAULT 0,
	request_moderation BOOLEAN NOT NULL DEFAULT TRUE,
	event_date TIMESTAMP NOT NULL,
	created_on TIMESTAMP NOT NULL,
	published_on TIMESTAMP,
	state VARCHAR(20) NOT NULL,
	CHECK (state IN ('PENDING', 'PUBLISHED', 'CANCELED'))
);`

const createParticipationRequestsTable = `
CREATE TABLE IF NOT EXISTS participation_requests (
	id BIGSERIAL PRIMARY KEY,
	event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	requester_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created TIMESTAMP NOT NULL DEFAULT NOW(),
	status VARCHAR(20) NOT NULL,
	UNIQUE (event_id, requester_id),
	CHECK (status IN ('PENDING', 'CONFIRMED', 'REJECTED', 'CANCELED'))
);`

const createCommentsTable = `
CREATE TABLE IF NOT EXISTS comments (
	id BIGSERIAL PRIMARY KEY,
	text VARCHAR(2000) NOT NULL,
	event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created TIMESTAMP NOT NULL DEFAULT NOW(),
	state VARCHAR(20) NOT NULL DEFAULT 'PENDING'
);`

const createEventsIndexes = `
CREATE INDEX IF NOT EXISTS events_initiator_idx ON events (initiator_id);
CREATE INDEX IF NOT EXISTS events_state_date_idx ON events (state, event_date);
CREATE INDEX IF NOT EXISTS participation_requests_event_status_idx ON participation_requests (event_id, status);`
