package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "contactbook-backend/internal/auth/delivery"
	authUsecase "contactbook-backend/internal/auth/usecase"
	contactDelivery "contactbook-backend/internal/contact/delivery"
	contactUsecase "contactbook-backend/internal/contact/usecase"
	"contactbook-backend/pkg/httpx"
	"contactbook-backend/pkg/validation"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, contactUc contactUsecase.ContactUsecase, validate *validation.Validator) {
	authHandler := authDelivery.NewAuthHandler(authUc, validate)
	contactHandler := contactDelivery.NewContactHandler(contactUc, validate)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// For test purposes
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello, World!"})
	})

	users := r.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)

		me := users.Group("/me")
		me.Use(authDelivery.AuthMiddleware(authUc))
		{
			me.GET("", authHandler.Me)
			me.POST("/add-contact", contactHandler.AddContact)
			me.GET("/contacts", contactHandler.ListContacts)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		httpx.NotFound(c)
	})
}
