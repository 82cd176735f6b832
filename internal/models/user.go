package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a principal's authorization category on the platform.
type Role string

const (
	RoleCouple       Role = "couple"
	RolePlanner      Role = "planner"
	RoleVendor       Role = "vendor"
	RoleVenueManager Role = "venue_manager"
	RoleAdmin        Role = "admin"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleCouple, RolePlanner, RoleVendor, RoleVenueManager, RoleAdmin:
		return true
	}
	return false
}

// User represents a platform user.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPublic is User without sensitive fields for API responses.
type UserPublic struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToPublic converts User to UserPublic with the given role ("" when the
// principal has no role record).
func (u *User) ToPublic(role Role) UserPublic {
	return UserPublic{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      role,
		CreatedAt: u.CreatedAt,
	}
}

// UserRole is a row in user_roles. A user has at most one role at a time;
// a user without a row has no role-gated access.
type UserRole struct {
	UserID    uuid.UUID `json:"user_id"`
	Role      Role      `json:"role"`
	UpdatedAt time.Time `json:"updated_at"`
}
