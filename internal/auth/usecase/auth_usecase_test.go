package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	authdomain "contactbook-backend/internal/auth/domain"
	authdto "contactbook-backend/internal/auth/dto"
	"contactbook-backend/internal/auth/repository"
	"contactbook-backend/pkg/token"
)

// fakeUserRepo is an in-memory UserRepository that enforces the email unique
// constraint the way the store does.
type fakeUserRepo struct {
	users  map[string]*authdomain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*authdomain.User{}}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func newTestUsecase(t *testing.T) (AuthUsecase, *fakeUserRepo, *token.Service) {
	t.Helper()
	repo := newFakeUserRepo()
	tokens, err := token.NewService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to build token service: %v", err)
	}
	log := zerolog.Nop()
	return NewAuthUsecase(repo, tokens, &log), repo, tokens
}

func TestRegister_IssuesTokenForNewUser(t *testing.T) {
	uc, repo, tokens := newTestUsecase(t)

	var bookUserID string
	uc.SetContactBookSetup(func(_ context.Context, userID string) error {
		bookUserID = userID
		return nil
	})

	resp, err := uc.Register(context.Background(), &authdto.RegisterRequest{
		Email:    "Jane@Example.com",
		Password: "Str0ng!pass",
		Name:     "Jane",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID == "" || resp.AccessToken == "" {
		t.Fatalf("expected id and token, got %+v", resp)
	}

	subject, err := tokens.Verify(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if subject != resp.ID {
		t.Errorf("token subject %q does not match user id %q", subject, resp.ID)
	}

	if bookUserID != resp.ID {
		t.Errorf("contact book created for %q, want %q", bookUserID, resp.ID)
	}

	stored := repo.users[resp.ID]
	if stored.Email != "jane@example.com" {
		t.Errorf("expected normalized email, got %q", stored.Email)
	}
	if stored.Password == "Str0ng!pass" {
		t.Error("password stored in plaintext")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	req := &authdto.RegisterRequest{Email: "jane@example.com", Password: "Str0ng!pass"}
	if _, err := uc.Register(context.Background(), req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := uc.Register(context.Background(), req)
	if !errors.Is(err, repository.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_BookSetupFailureDoesNotFailRegistration(t *testing.T) {
	uc, repo, _ := newTestUsecase(t)

	uc.SetContactBookSetup(func(context.Context, string) error {
		return errors.New("firestore unavailable")
	})

	resp, err := uc.Register(context.Background(), &authdto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "Str0ng!pass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.users[resp.ID] == nil {
		t.Error("user row should survive a failed book write")
	}
}

func TestLogin_Roundtrip(t *testing.T) {
	uc, _, tokens := newTestUsecase(t)

	reg, err := uc.Register(context.Background(), &authdto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "Str0ng!pass",
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	resp, err := uc.Login(&authdto.LoginRequest{Email: "jane@example.com", Password: "Str0ng!pass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	subject, err := tokens.Verify(resp.AccessToken)
	if err != nil {
		t.Fatalf("login token did not verify: %v", err)
	}
	if subject != reg.ID {
		t.Errorf("login token subject %q, want %q", subject, reg.ID)
	}
}

func TestLogin_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	if _, err := uc.Register(context.Background(), &authdto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "Str0ng!pass",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	_, errWrongPassword := uc.Login(&authdto.LoginRequest{Email: "jane@example.com", Password: "Wr0ng!pass"})
	_, errUnknownEmail := uc.Login(&authdto.LoginRequest{Email: "nobody@example.com", Password: "Str0ng!pass"})

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if !errors.Is(errUnknownEmail, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", errUnknownEmail)
	}
}

func TestMe_UserRowGone(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	_, err := uc.Me("no-such-user")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestValidateToken_Tampered(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	other, err := token.NewService("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to build token service: %v", err)
	}
	forged, err := other.Issue("user-1")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	_, err = uc.ValidateToken(forged)
	if !errors.Is(err, token.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_UserDeletedAfterIssue(t *testing.T) {
	uc, repo, _ := newTestUsecase(t)

	resp, err := uc.Register(context.Background(), &authdto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "Str0ng!pass",
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	delete(repo.users, resp.ID)

	_, err = uc.ValidateToken(resp.AccessToken)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestEmailInUse(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	if _, err := uc.Register(context.Background(), &authdto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "Str0ng!pass",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	taken, err := uc.EmailInUse("JANE@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !taken {
		t.Error("expected email to be reported in use, case-insensitively")
	}

	taken, err = uc.EmailInUse("free@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken {
		t.Error("expected fresh email to be reported free")
	}
}
