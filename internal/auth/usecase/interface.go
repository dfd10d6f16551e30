package usecase

import (
	"context"
	"errors"

	authdomain "contactbook-backend/internal/auth/domain"
	authdto "contactbook-backend/internal/auth/dto"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// which are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound means the token verified but the user row is gone.
	ErrUserNotFound = errors.New("user not found")
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.RegisterResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Me(userID string) (*authdomain.User, error)
	ValidateToken(tokenString string) (*authdomain.User, error)
	EmailInUse(email string) (bool, error)
	// SetContactBookSetup injects the hook that provisions the user's contact
	// book right after registration
	SetContactBookSetup(fn func(ctx context.Context, userID string) error)
}
