package access

import "github.com/vivaha-events/backend/internal/models"

// routes maps each guarded navigation area to its allowed roles. Areas not
// listed are either public or open to any authenticated principal (nil
// allowed set).
var routes = map[string][]models.Role{
	"/dashboard":        {models.RoleCouple, models.RolePlanner},
	"/events":           {models.RoleCouple, models.RolePlanner},
	"/events/create":    {models.RoleCouple, models.RolePlanner},
	"/vendors":          {models.RoleCouple, models.RolePlanner},
	"/venues":           {models.RoleCouple, models.RolePlanner},
	"/budget":           {models.RoleCouple, models.RolePlanner},
	"/cultural":         {models.RoleCouple, models.RolePlanner},
	"/admin":            {models.RoleAdmin},
	"/venue-manager":    {models.RoleVenueManager},
	"/vendor-dashboard": {models.RoleVendor},
}

// AllowedRoles returns the role set required for an area, or nil when the
// area is unrestricted.
func AllowedRoles(area string) []models.Role {
	return routes[area]
}

// Areas returns the guarded area paths.
func Areas() []string {
	out := make([]string, 0, len(routes))
	for a := range routes {
		out = append(out, a)
	}
	return out
}
