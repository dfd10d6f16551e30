package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contactbook-backend/pkg/validation"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Message    string                  `json:"message"`
	ErrorsList []validation.FieldError `json:"errorsList,omitempty"`
}

// BadRequest reports a validation failure with the full per-field list.
func BadRequest(c *gin.Context, errs []validation.FieldError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Message:    "Validation failed",
		ErrorsList: errs,
	})
}

// Unauthorized rejects the request with a fixed message. Callers use one
// wording per route class regardless of which check failed.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: message})
}

// NotFound is wired to the router's no-route fallback.
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Message: "Not found!"})
}

// Internal is the catch-all for store and network failures. The error itself
// is never echoed to the client.
func Internal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "Generic Server Error"})
}
