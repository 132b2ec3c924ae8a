package postgres

import (
	"context"
	"database/sql"

	"eventlisting/internal/domain"
)

type locationRepository struct {
	DB *sql.DB
}

func NewLocationRepository(db *sql.DB) domain.LocationRepository {
	return &locationRepository{DB: db}
}

func (r *locationRepository) Create(ctx context.Context, loc *domain.Location) error {
	query := `
		INSERT INTO locations (lat, lon)
		VALUES ($1, $2)
		RETURNING id
	`
	return conn(ctx, r.DB).QueryRowContext(ctx, query, loc.Lat, loc.Lon).Scan(&loc.ID)
}
