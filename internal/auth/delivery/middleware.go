package delivery

import (
	"strings"

	"github.com/gin-gonic/gin"

	"contactbook-backend/internal/auth/usecase"
	"contactbook-backend/pkg/httpx"
)

// TokenInvalidMessage is the single wording used for every rejection on an
// authenticated route. Missing header, bad signature, expiry and a deleted
// user all read the same to the client.
const TokenInvalidMessage = "Token is not valid!"

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpx.Unauthorized(c, TokenInvalidMessage)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httpx.Unauthorized(c, TokenInvalidMessage)
			return
		}

		user, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			httpx.Unauthorized(c, TokenInvalidMessage)
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}
