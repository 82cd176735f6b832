package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vivaha-events/backend/internal/models"
)

// RedirectHint sends an access denial carrying the area the client should
// navigate to instead. 401 for the auth area (re-authenticate), 403
// otherwise.
func RedirectHint(c *gin.Context, target, msg string) {
	status := http.StatusForbidden
	if target == "/auth" {
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"success": false, "error": msg, "redirect_to": target})
}

// FromError maps a domain error to its HTTP status. Unknown errors become
// 503: the backing store is the only collaborator that fails unexpectedly,
// and those failures are transient from the caller's point of view.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrSessionExpired):
		RedirectHint(c, "/auth", "session expired")
	case errors.Is(err, models.ErrValidation):
		BadRequest(c, err.Error())
	case errors.Is(err, models.ErrOwnershipViolation):
		Forbidden(c, err.Error())
	case errors.Is(err, models.ErrTargetUnavailable):
		c.JSON(http.StatusUnprocessableEntity, Body{Success: false, Error: err.Error()})
	case errors.Is(err, models.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, models.ErrInvalidTransition), errors.Is(err, models.ErrStaleStatus), errors.Is(err, models.ErrConstraintViolation):
		Conflict(c, err.Error())
	case errors.Is(err, models.ErrStoreUnavailable):
		ServiceUnavailable(c, err.Error())
	default:
		ServiceUnavailable(c, "store unavailable")
	}
}
