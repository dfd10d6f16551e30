package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	contactdomain "contactbook-backend/internal/contact/domain"
)

// fakeContactRepo keeps books and records in memory.
type fakeContactRepo struct {
	books     map[string][]contactdomain.Contact
	appendErr error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{books: map[string][]contactdomain.Contact{}}
}

func (r *fakeContactRepo) BookExists(_ context.Context, userID string) (bool, error) {
	_, ok := r.books[userID]
	return ok, nil
}

func (r *fakeContactRepo) CreateBook(_ context.Context, userID string) error {
	r.books[userID] = []contactdomain.Contact{}
	return nil
}

func (r *fakeContactRepo) Append(_ context.Context, userID string, contact *contactdomain.Contact) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.books[userID] = append(r.books[userID], *contact)
	return nil
}

func (r *fakeContactRepo) List(_ context.Context, userID string) ([]contactdomain.Contact, error) {
	return r.books[userID], nil
}

func newTestUsecase() (ContactUsecase, *fakeContactRepo) {
	repo := newFakeContactRepo()
	log := zerolog.Nop()
	return NewContactUsecase(repo, &log), repo
}

func TestAddContact_BookMissing(t *testing.T) {
	uc, _ := newTestUsecase()

	err := uc.AddContact(context.Background(), "user-1", &contactdomain.Contact{FirstName: "Jane"})
	if !errors.Is(err, ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
}

func TestAddContact_OwnerAlwaysFromCaller(t *testing.T) {
	uc, repo := newTestUsecase()

	if err := uc.CreateBook(context.Background(), "user-1"); err != nil {
		t.Fatalf("failed to create book: %v", err)
	}

	// A spoofed owner in the record must be overwritten.
	contact := &contactdomain.Contact{FirstName: "Jane", UserID: "someone-else"}
	if err := uc.AddContact(context.Background(), "user-1", contact); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.books["user-1"]
	if len(stored) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(stored))
	}
	if stored[0].UserID != "user-1" {
		t.Errorf("stored owner %q, want %q", stored[0].UserID, "user-1")
	}
}

func TestListContacts_BookMissing(t *testing.T) {
	uc, _ := newTestUsecase()

	_, err := uc.ListContacts(context.Background(), "user-1")
	if !errors.Is(err, ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
}

func TestListContacts_ReturnsAppendedRecords(t *testing.T) {
	uc, _ := newTestUsecase()

	if err := uc.CreateBook(context.Background(), "user-1"); err != nil {
		t.Fatalf("failed to create book: %v", err)
	}
	for _, name := range []string{"Jane", "John"} {
		if err := uc.AddContact(context.Background(), "user-1", &contactdomain.Contact{FirstName: name}); err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
	}

	contacts, err := uc.ListContacts(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 2 {
		t.Errorf("expected 2 contacts, got %d", len(contacts))
	}
}
