package usecase

import (
	"context"
	"errors"

	contactdomain "contactbook-backend/internal/contact/domain"
)

// ErrBookNotFound means the user has no provisioned contact book, which can
// happen when registration committed the user row but the book write failed.
var ErrBookNotFound = errors.New("contact book not found")

// ContactUsecase defines the interface for contact book business logic
type ContactUsecase interface {
	CreateBook(ctx context.Context, userID string) error
	AddContact(ctx context.Context, userID string, contact *contactdomain.Contact) error
	ListContacts(ctx context.Context, userID string) ([]contactdomain.Contact, error)
}
