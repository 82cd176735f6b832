package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vivaha-events/backend/internal/models"
)

func loadedState(role models.Role) State {
	id := uuid.New()
	return State{SessionLoaded: true, Principal: &id, RoleLoaded: true, Role: role}
}

func TestEvaluate_PendingWhileSessionLoads(t *testing.T) {
	d := Evaluate(State{}, AllowedRoles("/dashboard"))
	assert.Equal(t, Pending, d.Kind)
}

func TestEvaluate_UnauthenticatedRedirectsToAuth(t *testing.T) {
	d := Evaluate(State{SessionLoaded: true}, AllowedRoles("/dashboard"))
	assert.Equal(t, Redirect, d.Kind)
	assert.Equal(t, "/auth", d.Target)
}

func TestEvaluate_NoRoleRestrictionAllowsAuthenticated(t *testing.T) {
	id := uuid.New()
	d := Evaluate(State{SessionLoaded: true, Principal: &id}, nil)
	assert.Equal(t, Allow, d.Kind)
}

func TestEvaluate_PendingWhileRoleLoads(t *testing.T) {
	// The mismatch redirect must never fire before the role fetch completes,
	// even though the current (zero) role is not in the allowed set.
	id := uuid.New()
	s := State{SessionLoaded: true, Principal: &id, RoleLoaded: false}
	d := Evaluate(s, AllowedRoles("/dashboard"))
	assert.Equal(t, Pending, d.Kind)
}

func TestEvaluate_NullRoleRedirectsToDashboardAfterLoad(t *testing.T) {
	for _, area := range Areas() {
		d := Evaluate(loadedState(""), AllowedRoles(area))
		assert.Equal(t, Redirect, d.Kind, "area %s", area)
		assert.Equal(t, "/dashboard", d.Target, "area %s", area)
	}
}

func TestEvaluate_AllowedRoleAllowed(t *testing.T) {
	tests := []struct {
		area string
		role models.Role
	}{
		{"/dashboard", models.RoleCouple},
		{"/dashboard", models.RolePlanner},
		{"/events", models.RoleCouple},
		{"/events/create", models.RolePlanner},
		{"/vendors", models.RoleCouple},
		{"/venues", models.RolePlanner},
		{"/budget", models.RoleCouple},
		{"/cultural", models.RolePlanner},
		{"/admin", models.RoleAdmin},
		{"/venue-manager", models.RoleVenueManager},
		{"/vendor-dashboard", models.RoleVendor},
	}
	for _, tt := range tests {
		d := Evaluate(loadedState(tt.role), AllowedRoles(tt.area))
		assert.Equal(t, Allow, d.Kind, "area %s role %s", tt.area, tt.role)
	}
}

func TestEvaluate_MismatchRedirectsToRoleHome(t *testing.T) {
	tests := []struct {
		role models.Role
		want string
	}{
		{models.RoleVendor, "/vendor-dashboard"},
		{models.RoleVenueManager, "/venue-manager"},
		{models.RoleAdmin, "/admin"},
		{models.RoleCouple, "/dashboard"},
		{models.RolePlanner, "/dashboard"},
	}
	for _, tt := range tests {
		// /budget allows only couple and planner; couple/planner mismatches
		// are checked against the vendor dashboard instead.
		area := "/budget"
		if tt.role == models.RoleCouple || tt.role == models.RolePlanner {
			area = "/vendor-dashboard"
		}
		d := Evaluate(loadedState(tt.role), AllowedRoles(area))
		assert.Equal(t, Redirect, d.Kind, "role %s", tt.role)
		assert.Equal(t, tt.want, d.Target, "role %s", tt.role)
	}
}

func TestEvaluate_VendorOnCoupleDashboard(t *testing.T) {
	d := Evaluate(loadedState(models.RoleVendor), AllowedRoles("/dashboard"))
	assert.Equal(t, Redirect, d.Kind)
	assert.Equal(t, "/vendor-dashboard", d.Target)
}

func TestEvaluate_Reentrant(t *testing.T) {
	// Re-running with identical state yields the identical decision; the
	// adapter may re-evaluate on every state change without duplicating
	// navigation commands.
	s := loadedState(models.RoleVendor)
	allowed := AllowedRoles("/dashboard")
	first := Evaluate(s, allowed)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Evaluate(s, allowed))
	}
}

func TestEvaluate_RoleRevokedMidSession(t *testing.T) {
	allowed := AllowedRoles("/dashboard")
	assert.Equal(t, Allow, Evaluate(loadedState(models.RoleCouple), allowed).Kind)

	// Next evaluation after revocation redirects.
	d := Evaluate(loadedState(""), allowed)
	assert.Equal(t, Redirect, d.Kind)
	assert.Equal(t, "/dashboard", d.Target)
}

func TestRoleHome(t *testing.T) {
	assert.Equal(t, "/vendor-dashboard", RoleHome(models.RoleVendor))
	assert.Equal(t, "/venue-manager", RoleHome(models.RoleVenueManager))
	assert.Equal(t, "/admin", RoleHome(models.RoleAdmin))
	assert.Equal(t, "/dashboard", RoleHome(models.RoleCouple))
	assert.Equal(t, "/dashboard", RoleHome(models.RolePlanner))
	assert.Equal(t, "/dashboard", RoleHome(""))
}
