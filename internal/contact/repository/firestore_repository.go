package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contactdomain "contactbook-backend/internal/contact/domain"
)

const (
	booksCollection    = "contact_books"
	contactsCollection = "contacts"
)

// firestoreContactRepository stores one book per user: a meta document at
// contact_books/{userID} with the records in its contacts subcollection.
type firestoreContactRepository struct {
	client *firestore.Client
}

// NewContactRepository creates a new Firestore-backed contact repository
func NewContactRepository(client *firestore.Client) ContactRepository {
	return &firestoreContactRepository{
		client: client,
	}
}

func (r *firestoreContactRepository) bookDoc(userID string) *firestore.DocumentRef {
	return r.client.Collection(booksCollection).Doc(userID)
}

func (r *firestoreContactRepository) BookExists(ctx context.Context, userID string) (bool, error) {
	_, err := r.bookDoc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to read contact book: %w", err)
	}
	return true, nil
}

func (r *firestoreContactRepository) CreateBook(ctx context.Context, userID string) error {
	_, err := r.bookDoc(userID).Set(ctx, map[string]any{
		"ownerId":   userID,
		"createdAt": firestore.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to create contact book: %w", err)
	}
	return nil
}

func (r *firestoreContactRepository) Append(ctx context.Context, userID string, contact *contactdomain.Contact) error {
	contact.CreatedAt = time.Now()
	_, _, err := r.bookDoc(userID).Collection(contactsCollection).Add(ctx, contact)
	if err != nil {
		return fmt.Errorf("failed to append contact: %w", err)
	}
	return nil
}

func (r *firestoreContactRepository) List(ctx context.Context, userID string) ([]contactdomain.Contact, error) {
	iter := r.bookDoc(userID).Collection(contactsCollection).Documents(ctx)
	defer iter.Stop()

	var contacts []contactdomain.Contact
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list contacts: %w", err)
		}

		var contact contactdomain.Contact
		if err := doc.DataTo(&contact); err != nil {
			return nil, fmt.Errorf("failed to decode contact %s: %w", doc.Ref.ID, err)
		}
		contacts = append(contacts, contact)
	}

	return contacts, nil
}
