package domain

import "context"

// Category groups events.
type Category struct {
	ID   int64
	Name string
}

// CategoryRepository defines the interface for category storage.
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*Category, error)
}
