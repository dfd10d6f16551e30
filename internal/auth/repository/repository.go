package repository

import (
	"errors"

	authdomain "contactbook-backend/internal/auth/domain"
)

// ErrEmailTaken is returned by Create when the store's unique constraint on
// email rejects the insert. The pre-insert lookup only narrows the race
// window; this is the authoritative guard.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines the interface for user credential operations
type UserRepository interface {
	// Create inserts a new user, assigning its identifier
	Create(user *authdomain.User) error
	// FindByID returns nil without error when no user matches
	FindByID(id string) (*authdomain.User, error)
	// FindByEmail returns nil without error when no user matches
	FindByEmail(email string) (*authdomain.User, error)
}
