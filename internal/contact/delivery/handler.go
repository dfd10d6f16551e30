package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "contactbook-backend/internal/auth/delivery"
	contactdomain "contactbook-backend/internal/contact/domain"
	contactdto "contactbook-backend/internal/contact/dto"
	"contactbook-backend/internal/contact/usecase"
	"contactbook-backend/pkg/httpx"
	"contactbook-backend/pkg/validation"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	validate       *validation.Validator
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, validate *validation.Validator) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		validate:       validate,
	}
}

func (h *ContactHandler) AddContact(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		httpx.Unauthorized(c, authdelivery.TokenInvalidMessage)
		return
	}

	var req contactdto.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, []validation.FieldError{{Field: "", Message: "invalid JSON body"}})
		return
	}

	if errs := h.validate.Validate(&req); len(errs) > 0 {
		httpx.BadRequest(c, errs)
		return
	}

	contact := &contactdomain.Contact{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
	}

	if err := h.contactUsecase.AddContact(c.Request.Context(), userID, contact); err != nil {
		if errors.Is(err, usecase.ErrBookNotFound) {
			httpx.Unauthorized(c, authdelivery.TokenInvalidMessage)
			return
		}
		httpx.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, contactdto.AddContactResponse{Message: "Contact added"})
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		httpx.Unauthorized(c, authdelivery.TokenInvalidMessage)
		return
	}

	contacts, err := h.contactUsecase.ListContacts(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrBookNotFound) {
			httpx.Unauthorized(c, authdelivery.TokenInvalidMessage)
			return
		}
		httpx.Internal(c)
		return
	}

	if contacts == nil {
		contacts = []contactdomain.Contact{}
	}

	c.JSON(http.StatusOK, contacts)
}
