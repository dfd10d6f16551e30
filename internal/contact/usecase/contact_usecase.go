package usecase

import (
	"context"

	"github.com/rs/zerolog"

	contactdomain "contactbook-backend/internal/contact/domain"
	"contactbook-backend/internal/contact/repository"
)

// contactUsecase implements ContactUsecase interface
type contactUsecase struct {
	contactRepo repository.ContactRepository
	logger      *zerolog.Logger
}

// NewContactUsecase creates a new instance of contactUsecase
func NewContactUsecase(contactRepo repository.ContactRepository, logger *zerolog.Logger) ContactUsecase {
	return &contactUsecase{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (u *contactUsecase) CreateBook(ctx context.Context, userID string) error {
	return u.contactRepo.CreateBook(ctx, userID)
}

func (u *contactUsecase) AddContact(ctx context.Context, userID string, contact *contactdomain.Contact) error {
	exists, err := u.contactRepo.BookExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBookNotFound
	}

	// The owner is always the verified token's subject, never the body value.
	contact.UserID = userID

	return u.contactRepo.Append(ctx, userID, contact)
}

func (u *contactUsecase) ListContacts(ctx context.Context, userID string) ([]contactdomain.Contact, error) {
	exists, err := u.contactRepo.BookExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBookNotFound
	}

	return u.contactRepo.List(ctx, userID)
}
