package domain

import "context"

// User is a registered user. Only the fields the event backend reads are modelled.
type User struct {
	ID    int64
	Name  string
	Email string
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
}

// TokenVerifier verifies a bearer token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID int64, err error)
}
