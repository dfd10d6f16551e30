package api

import (
	"github.com/gin-gonic/gin"

	authUsecase "contactbook-backend/internal/auth/usecase"
	contactUsecase "contactbook-backend/internal/contact/usecase"
	"contactbook-backend/pkg/config"
	"contactbook-backend/pkg/validation"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	contactUsecase contactUsecase.ContactUsecase
	validate       *validation.Validator
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, contactUc contactUsecase.ContactUsecase, validate *validation.Validator, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		contactUsecase: contactUc,
		validate:       validate,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.contactUsecase, h.validate)

	return r.Run(addr)
}
