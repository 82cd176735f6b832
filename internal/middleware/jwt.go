package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vivaha-events/backend/pkg/response"
)

const (
	// ContextUserID is the key for user ID in gin context.
	ContextUserID = "user_id"
	// ContextUserEmail is the key for user email in gin context.
	ContextUserEmail = "user_email"
)

// TokenValidator validates a bearer token and returns the principal's
// identity. Kept as a function type so the middleware does not depend on the
// auth package.
type TokenValidator func(token string) (userID uuid.UUID, email string, err error)

// JWT returns a middleware that validates the bearer token and sets the
// principal's identity in context. An invalid or expired token resolves to a
// redirect hint toward /auth, never an opaque server error.
func JWT(validate TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.RedirectHint(c, "/auth", "missing authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.RedirectHint(c, "/auth", "invalid authorization header")
			c.Abort()
			return
		}
		userID, email, err := validate(parts[1])
		if err != nil {
			response.RedirectHint(c, "/auth", "invalid or expired token")
			c.Abort()
			return
		}
		c.Set(ContextUserID, userID)
		c.Set(ContextUserEmail, email)
		c.Next()
	}
}
