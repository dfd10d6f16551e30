package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	authdomain "contactbook-backend/internal/auth/domain"
	authdto "contactbook-backend/internal/auth/dto"
	"contactbook-backend/internal/auth/repository"
	"contactbook-backend/pkg/token"
)

// Burned on unknown-email logins so both 401 paths pay for a bcrypt compare.
var dummyHash, _ = repository.HashPassword("no-such-user-placeholder")

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo         repository.UserRepository
	tokens           *token.Service
	logger           *zerolog.Logger
	setupContactBook func(ctx context.Context, userID string) error
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service, logger *zerolog.Logger) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (u *authUsecase) SetContactBookSetup(fn func(ctx context.Context, userID string) error) {
	u.setupContactBook = fn
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.RegisterResponse, error) {
	email := normalizeEmail(req.Email)

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    email,
		Password: hashedPassword,
		Name:     req.Name,
		Surname:  req.Surname,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	accessToken, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	// The user row is already committed; book creation is a second,
	// independent write. On failure the user stands without a book and
	// add-contact surfaces it at read time.
	if u.setupContactBook != nil {
		if err := u.setupContactBook(ctx, user.ID); err != nil {
			u.logger.Error().Err(err).Str("user_id", user.ID).
				Msg("contact book creation failed, user registered without one")
		}
	}

	return &authdto.RegisterResponse{
		AccessToken: accessToken,
		ID:          user.ID,
	}, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}

	if user == nil {
		repository.CheckPasswordHash(req.Password, dummyHash)
		return nil, ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{AccessToken: accessToken}, nil
}

func (u *authUsecase) Me(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	userID, err := u.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	return u.Me(userID)
}

func (u *authUsecase) EmailInUse(email string) (bool, error) {
	user, err := u.userRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
