// Package gate decides whether a route renders for the current session or
// redirects elsewhere. It is a pure function of (session state, route
// requirement) and is evaluated on every navigation — never cached, since the
// session can change between requests.
package gate

import (
	"net/url"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
)

// Requirement is a route's declared access policy.
type Requirement int

const (
	RequireNone Requirement = iota
	RequireUser
	RequireAdmin
)

// Well-known storefront paths used as redirect targets.
const (
	PathSignIn    = "/login"
	PathUserHome  = "/"
	PathAdminHome = "/admin"
)

// Action is the outcome kind of a gate decision.
type Action int

const (
	// Render lets the request through.
	Render Action = iota
	// Redirect sends the caller to Decision.Location.
	Redirect
	// Wait means the session is still restoring; show a neutral waiting
	// state rather than committing to a redirect.
	Wait
)

// Decision is the gate's verdict for one navigation.
type Decision struct {
	Action   Action
	Location string
}

// Decide evaluates the access policy for a route. The rules are ordered:
//
//  1. No requirement → render.
//  2. Session still loading → wait, no redirect yet.
//  3. Anonymous → sign-in, carrying the requested path for the return trip.
//  4. User-only route visited by an admin → admin home.
//  5. Admin-only route visited by a non-admin → user home.
//  6. Otherwise → render.
func Decide(state domain.SessionState, user *domain.User, req Requirement, requestedPath string) Decision {
	if req == RequireNone {
		return Decision{Action: Render}
	}

	if state == domain.SessionLoading {
		return Decision{Action: Wait}
	}

	if state != domain.SessionAuthenticated || user == nil {
		return Decision{Action: Redirect, Location: signInLocation(requestedPath)}
	}

	if req == RequireUser && user.Role == domain.RoleAdmin {
		return Decision{Action: Redirect, Location: PathAdminHome}
	}
	if req == RequireAdmin && user.Role != domain.RoleAdmin {
		return Decision{Action: Redirect, Location: PathUserHome}
	}

	return Decision{Action: Render}
}

// signInLocation builds the sign-in redirect, preserving where the caller was
// headed so sign-in can return there afterwards.
func signInLocation(requestedPath string) string {
	if requestedPath == "" {
		return PathSignIn
	}
	return PathSignIn + "?from=" + url.QueryEscape(requestedPath)
}
