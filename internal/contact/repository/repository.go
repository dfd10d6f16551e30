package repository

import (
	"context"

	contactdomain "contactbook-backend/internal/contact/domain"
)

// ContactRepository defines the interface for the per-user contact books in
// the document store
type ContactRepository interface {
	// BookExists reports whether the user's contact book has been provisioned
	BookExists(ctx context.Context, userID string) (bool, error)
	// CreateBook provisions an empty contact book, called once at registration
	CreateBook(ctx context.Context, userID string) error
	// Append writes one contact into the user's book
	Append(ctx context.Context, userID string, contact *contactdomain.Contact) error
	// List returns every contact in the user's book
	List(ctx context.Context, userID string) ([]contactdomain.Contact, error)
}
