// Package access decides whether a principal may enter a navigation area.
// The decision function is pure: it performs no I/O and no navigation, so a
// thin adapter (HTTP middleware, decision endpoint) carries out the redirect
// and the logic stays testable on its own.
package access

import (
	"github.com/google/uuid"

	"github.com/vivaha-events/backend/internal/models"
)

// DecisionKind enumerates guard outcomes.
type DecisionKind int

const (
	// Allow grants entry to the area.
	Allow DecisionKind = iota
	// Redirect denies entry and names the target the caller must navigate to.
	Redirect
	// Pending means session or role resolution is still in flight; the caller
	// must not render the area nor redirect yet.
	Pending
)

// Decision is the guard's verdict for one evaluation.
type Decision struct {
	Kind   DecisionKind
	Target string // set when Kind == Redirect
}

// State is a snapshot of session and role resolution at evaluation time.
// Evaluation is re-entrant: callers re-evaluate whenever any field changes,
// and identical decisions are idempotent because the function holds no state.
type State struct {
	SessionLoaded bool
	Principal     *uuid.UUID // nil when unauthenticated
	RoleLoaded    bool
	Role          models.Role // "" when the principal has no role record
}

// AuthPath is the sign-in area unauthenticated principals are sent to.
const AuthPath = "/auth"

// RoleHome maps a role to its home area. Roles without a dedicated dashboard,
// including the empty role, fall through to /dashboard.
func RoleHome(role models.Role) string {
	switch role {
	case models.RoleVendor:
		return "/vendor-dashboard"
	case models.RoleVenueManager:
		return "/venue-manager"
	case models.RoleAdmin:
		return "/admin"
	default:
		return "/dashboard"
	}
}

// Evaluate decides entry for an area restricted to allowed roles. A nil
// allowed set means the area is open to any authenticated principal.
//
// The role-mismatch redirect takes priority over rendering the area, but it
// never fires before the role fetch completes; redirecting on a
// still-loading role would bounce principals whose role arrives a moment
// later.
func Evaluate(s State, allowed []models.Role) Decision {
	if !s.SessionLoaded {
		return Decision{Kind: Pending}
	}
	if s.Principal == nil {
		return Decision{Kind: Redirect, Target: AuthPath}
	}
	if allowed == nil {
		return Decision{Kind: Allow}
	}
	if !s.RoleLoaded {
		return Decision{Kind: Pending}
	}
	for _, r := range allowed {
		if s.Role == r {
			return Decision{Kind: Allow}
		}
	}
	return Decision{Kind: Redirect, Target: RoleHome(s.Role)}
}
