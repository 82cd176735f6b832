package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vivaha-events/backend/internal/access"
	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/response"
)

// RoleLookup fetches the principal's current role ("" when no role record
// exists). A per-request lookup, so a revoked or switched role takes effect
// on the next evaluation.
type RoleLookup func(ctx context.Context, userID uuid.UUID) (models.Role, error)

// RequireArea returns a middleware enforcing the access rules of the given
// navigation area. Runs after JWT: the session is already resolved, the role
// is fetched here, and the guard evaluates over fully loaded state, so the
// decision on the wire is never Pending.
func RequireArea(lookup RoleLookup, area string) gin.HandlerFunc {
	allowed := access.AllowedRoles(area)
	return func(c *gin.Context) {
		userID := c.MustGet(ContextUserID).(uuid.UUID)

		role, err := lookup(c.Request.Context(), userID)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		principal := userID
		decision := access.Evaluate(access.State{
			SessionLoaded: true,
			Principal:     &principal,
			RoleLoaded:    true,
			Role:          role,
		}, allowed)

		switch decision.Kind {
		case access.Allow:
			c.Set(ContextUserRole, role)
			c.Next()
		case access.Redirect:
			response.RedirectHint(c, decision.Target, "access denied for role")
			c.Abort()
		default:
			// Unreachable with loaded state; fail closed.
			response.Forbidden(c, "access evaluation incomplete")
			c.Abort()
		}
	}
}
