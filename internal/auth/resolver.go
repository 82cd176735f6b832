package auth

import (
	"context"
	"fmt"

	"github.com/vivaha-events/backend/internal/models"
)

// Session is a resolved principal and their role. Role is "" when the
// principal has no role record.
type Session struct {
	User *models.User
	Role models.Role
}

// Resolver resolves an opaque session token into a principal and role.
// Resolution is two dependent lookups: the session (token -> user) first,
// then the role keyed by the user's id. The role lookup never starts when
// the session lookup fails.
type Resolver struct {
	jwt   *JWTService
	users *Repository
	roles *RoleStore
}

// NewResolver creates a session resolver.
func NewResolver(jwt *JWTService, users *Repository, roles *RoleStore) *Resolver {
	return &Resolver{jwt: jwt, users: users, roles: roles}
}

// Resolve validates the token and loads the principal and role. Idempotent
// and side-effect free. An invalid or expired token yields
// models.ErrSessionExpired; a principal without a role record yields a
// Session with Role == "".
func (r *Resolver) Resolve(ctx context.Context, token string) (*Session, error) {
	claims, err := r.jwt.Validate(token)
	if err != nil {
		return nil, models.ErrSessionExpired
	}

	user, err := r.users.GetByID(ctx, claims.UserID)
	if err != nil {
		// The token outlived its user record.
		if err == models.ErrNotFound {
			return nil, models.ErrSessionExpired
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	role, err := r.roles.Get(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve role: %w", err)
	}
	return &Session{User: user, Role: role}, nil
}
