package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "contactbook-backend/internal/auth/domain"
	authdto "contactbook-backend/internal/auth/dto"
	"contactbook-backend/internal/auth/repository"
	"contactbook-backend/internal/auth/usecase"
	"contactbook-backend/pkg/httpx"
	"contactbook-backend/pkg/validation"
)

// CredentialsInvalidMessage is shared by the unknown-email and wrong-password
// paths so login responses cannot leak account existence.
const CredentialsInvalidMessage = "Wrong login / registration credentials!"

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validate    *validation.Validator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validate *validation.Validator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validate:    validate,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, []validation.FieldError{{Field: "", Message: "invalid JSON body"}})
		return
	}

	errs := h.validate.Validate(&req)

	// Uniqueness joins the same errorsList as the shape rules.
	if taken, err := h.authUsecase.EmailInUse(req.Email); err != nil {
		httpx.Internal(c)
		return
	} else if taken {
		errs = append(errs, validation.FieldError{Field: "email", Message: "email is already registered"})
	}

	if len(errs) > 0 {
		httpx.BadRequest(c, errs)
		return
	}

	resp, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		// The store constraint caught a concurrent insert the pre-check missed.
		if errors.Is(err, repository.ErrEmailTaken) {
			httpx.BadRequest(c, []validation.FieldError{{Field: "email", Message: "email is already registered"}})
			return
		}
		httpx.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, []validation.FieldError{{Field: "", Message: "invalid JSON body"}})
		return
	}

	if errs := h.validate.Validate(&req); len(errs) > 0 {
		httpx.BadRequest(c, errs)
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			httpx.Unauthorized(c, CredentialsInvalidMessage)
			return
		}
		httpx.Internal(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	value, exists := c.Get("user")
	user, ok := value.(*authdomain.User)
	if !exists || !ok {
		httpx.Unauthorized(c, TokenInvalidMessage)
		return
	}

	c.JSON(http.StatusOK, user)
}
