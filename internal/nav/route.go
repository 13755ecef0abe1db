package nav

import (
	"strings"

	"homestay-client/internal/data/entity"
)

// Route is one navigable page. Allowed nil means public; an empty
// non-nil set means any authenticated session; otherwise the session
// role must be in the set.
type Route struct {
	Pattern string
	Allowed []entity.Role
}

var anyAuthenticated = []entity.Role{}

// Routes mirrors the page tree of the reservation UI.
var Routes = []Route{
	// Public
	{Pattern: "/"},
	{Pattern: "/rooms"},
	{Pattern: "/rooms/{id}"},
	{Pattern: "/booking"},
	{Pattern: "/login"},
	{Pattern: "/register"},

	// User
	{Pattern: "/dashboard", Allowed: anyAuthenticated},
	{Pattern: "/bookings", Allowed: anyAuthenticated},
	{Pattern: "/bookings/{id}", Allowed: anyAuthenticated},
	{Pattern: "/profile", Allowed: anyAuthenticated},

	// Admin
	{Pattern: "/admin", Allowed: []entity.Role{entity.RoleAdmin}},
	{Pattern: "/admin/bookings", Allowed: []entity.Role{entity.RoleAdmin}},
	{Pattern: "/admin/rooms", Allowed: []entity.Role{entity.RoleAdmin}},
	{Pattern: "/admin/availability", Allowed: []entity.Role{entity.RoleAdmin}},
	{Pattern: "/admin/pricing", Allowed: []entity.Role{entity.RoleAdmin}},
	{Pattern: "/admin/users", Allowed: []entity.Role{entity.RoleAdmin}},
	{Pattern: "/admin/employees", Allowed: []entity.Role{entity.RoleAdmin}},

	// Manager
	{Pattern: "/manager", Allowed: []entity.Role{entity.RoleAdmin, entity.RoleManager}},
	{Pattern: "/manager/check-in/{bookingId}", Allowed: []entity.Role{entity.RoleAdmin, entity.RoleManager}},
	{Pattern: "/manager/check-out/{bookingId}", Allowed: []entity.Role{entity.RoleAdmin, entity.RoleManager}},
	{Pattern: "/manager/room-status", Allowed: []entity.Role{entity.RoleAdmin, entity.RoleManager}},
	{Pattern: "/manager/guest-requests", Allowed: []entity.Role{entity.RoleAdmin, entity.RoleManager}},
}

// matchRoute resolves a concrete path against the route table.
// Segments wrapped in braces match any value.
func matchRoute(path string) *Route {
	pathParts := splitPath(path)

	for i := range Routes {
		patternParts := splitPath(Routes[i].Pattern)
		if len(patternParts) != len(pathParts) {
			continue
		}

		matched := true
		for j, part := range patternParts {
			if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
				continue
			}
			if part != pathParts[j] {
				matched = false
				break
			}
		}

		if matched {
			return &Routes[i]
		}
	}

	return nil
}

func splitPath(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}
