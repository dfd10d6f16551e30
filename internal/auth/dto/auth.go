package dto

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse mirrors the original API shape: the access token plus the
// new user's identifier.
type RegisterResponse struct {
	AccessToken string `json:"accessToken"`
	ID          string `json:"_id"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
