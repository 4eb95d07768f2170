package tui

import "github.com/mmcdole/marquee/internal/domain"

// Route identifies a screen
type Route int

const (
	RouteDashboard Route = iota
	RouteProfile
	RouteLogin
)

// String returns the route's display name
func (r Route) String() string {
	switch r {
	case RouteDashboard:
		return "Dashboard"
	case RouteProfile:
		return "Profile"
	case RouteLogin:
		return "Login"
	default:
		return "Unknown"
	}
}

// Protected reports whether the route requires a session
func (r Route) Protected() bool {
	return r != RouteLogin
}

// Decision is what the gate tells the router to do
type Decision struct {
	Route    Route // Route to render
	Redirect bool  // True when the requested route was refused
	From     Route // Requested route, kept so login can return to it
}

// Guard decides whether route may render for session.
// Protected routes without a session redirect to the login route.
func Guard(session *domain.Session, route Route) Decision {
	if !route.Protected() || session.Present() {
		return Decision{Route: route, From: route}
	}
	return Decision{Route: RouteLogin, Redirect: true, From: route}
}

// Gate consults the session held by the store on every check
type Gate struct {
	store domain.Store
}

// NewGate creates a gate over store
func NewGate(store domain.Store) Gate {
	return Gate{store: store}
}

// Check runs Guard against the store's current session
func (g Gate) Check(route Route) Decision {
	var session *domain.Session
	if s, ok := g.store.GetSession(); ok {
		session = &s
	}
	return Guard(session, route)
}
