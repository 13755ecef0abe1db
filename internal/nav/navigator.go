package nav

import (
	"sync"

	"homestay-client/internal/data/entity"

	"go.uber.org/zap"
)

const (
	LoginPath   = "/login"
	HomePath    = "/"
	RoomsPath   = "/rooms"
	BookingPath = "/booking"
	AdminPath   = "/admin"
	ManagerPath = "/manager"
)

// RoleSource exposes the current session role. The second return is
// false for unauthenticated sessions.
type RoleSource interface {
	CurrentRole() (entity.Role, bool)
}

// Navigator evaluates the route guard synchronously on every
// navigation. Decisions are never cached across role changes.
type Navigator struct {
	mu       sync.Mutex
	roles    RoleSource
	log      *zap.Logger
	current  string
	pending  string // intended destination preserved across a login redirect
	onChange func(string)
}

func NewNavigator(roles RoleSource, log *zap.Logger) *Navigator {
	return &Navigator{
		roles:   roles,
		log:     log.With(zap.String("component", "nav")),
		current: HomePath,
	}
}

// OnChange registers the render layer's callback for route changes.
func (n *Navigator) OnChange(fn func(string)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

// Navigate applies the guard and moves to the resolved path, which it
// returns. Unauthenticated access to a protected route redirects to
// login and preserves the intended destination; an insufficient role
// falls back to the neutral default.
func (n *Navigator) Navigate(path string) string {
	resolved := n.resolve(path)

	n.mu.Lock()
	n.current = resolved
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(resolved)
	}

	return resolved
}

func (n *Navigator) resolve(path string) string {
	route := matchRoute(path)
	if route == nil {
		n.log.Warn("Unknown route", zap.String("path", path))
		return HomePath
	}

	// Public route
	if route.Allowed == nil {
		return path
	}

	role, authenticated := n.roles.CurrentRole()
	if !authenticated {
		n.mu.Lock()
		n.pending = path
		n.mu.Unlock()

		n.log.Info("Redirecting unauthenticated navigation to login",
			zap.String("path", path))
		return LoginPath
	}

	// Any authenticated session
	if len(route.Allowed) == 0 {
		return path
	}

	if !role.In(route.Allowed...) {
		n.log.Warn("Insufficient role for route",
			zap.String("path", path),
			zap.String("role", string(role)))
		return HomePath
	}

	return path
}

// RedirectToLogin sends the session to login, preserving intended as
// the post-login destination. For callers that gate entry themselves
// instead of going through the route table.
func (n *Navigator) RedirectToLogin(intended string) string {
	n.mu.Lock()
	n.pending = intended
	n.mu.Unlock()

	return n.Navigate(LoginPath)
}

// NavigateAfterLogin routes by role: admins and managers land on their
// dashboards, everyone else returns to the preserved destination.
func (n *Navigator) NavigateAfterLogin(role entity.Role) string {
	switch role {
	case entity.RoleAdmin:
		return n.Navigate(AdminPath)
	case entity.RoleManager:
		return n.Navigate(ManagerPath)
	default:
		return n.Navigate(n.ConsumePending())
	}
}

// ConsumePending pops the destination preserved before a login
// redirect, defaulting to home.
func (n *Navigator) ConsumePending() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	dest := n.pending
	n.pending = ""
	if dest == "" {
		dest = HomePath
	}
	return dest
}

func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
