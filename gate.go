package auth

// RouteRequirement is the declarative access policy attached to a navigable
// path. Requirements are owned by routing configuration and immutable at
// runtime.
type RouteRequirement struct {
	Path          string
	RequiresAuth  bool
	RequiresAdmin bool
	FallbackPath  string
}

// Public reports whether the route carries no requirements at all.
func (r RouteRequirement) Public() bool {
	return !r.RequiresAuth && !r.RequiresAdmin
}

// Decision is the outcome of an authorization check: allow, or redirect to a
// fallback path.
type Decision struct {
	allowed  bool
	redirect string
}

// Allow grants access.
func Allow() Decision {
	return Decision{allowed: true}
}

// RedirectTo denies access, sending the caller to path.
func RedirectTo(path string) Decision {
	return Decision{redirect: path}
}

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool {
	return d.allowed
}

// RedirectPath returns the fallback path, ok=false when allowed.
func (d Decision) RedirectPath() (string, bool) {
	if d.allowed {
		return "", false
	}
	return d.redirect, true
}

// Gate turns a route requirement plus the current session state into a
// decision. It reads state, never mutates it, and never returns an error.
type Gate struct {
	logger Logger
}

// NewGate returns an authorization gate.
func NewGate() *Gate {
	return &Gate{logger: defLogger{}}
}

func (g *Gate) WithLogger(logger Logger) *Gate {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// Decide evaluates the requirement against the state. Rules run in precedence
// order and the first match wins:
//
//  1. admin-only route without an admin session redirects to the route's
//     fallback. Checking this before the plain auth rule sends a signed-in
//     non-admin to the authenticated fallback (e.g. the list page), not back
//     to the login page.
//  2. auth-only route without a session redirects to the route's fallback.
//  3. everything else is allowed, regardless of state.
//
// Decide is re-evaluated on every navigation; nothing is cached, so a state
// change between renders is always observed by the next check.
func (g *Gate) Decide(requirement RouteRequirement, state State) Decision {
	if requirement.RequiresAdmin && !state.IsAdmin() {
		g.logger.Debug(
			"gate rejected admin route",
			"path", requirement.Path,
			"status", state.Status(),
			"role", state.Role(),
		)
		return RedirectTo(requirement.FallbackPath)
	}

	if requirement.RequiresAuth && !state.Authenticated() {
		g.logger.Debug("gate rejected protected route", "path", requirement.Path)
		return RedirectTo(requirement.FallbackPath)
	}

	return Allow()
}

// WildcardPath matches any path without its own requirement entry.
const WildcardPath = "*"

// RouteTable is the immutable set of route requirements, built once from the
// routing configuration. Unknown paths fall back to the wildcard entry, which
// defaults to public (the console renders its error page for them).
type RouteTable struct {
	exact    map[string]RouteRequirement
	fallback RouteRequirement
}

// NewRouteTable indexes requirements by path. A WildcardPath entry becomes
// the fallback for unlisted paths.
func NewRouteTable(requirements ...RouteRequirement) *RouteTable {
	table := &RouteTable{
		exact:    make(map[string]RouteRequirement, len(requirements)),
		fallback: RouteRequirement{Path: WildcardPath},
	}

	for _, req := range requirements {
		if req.Path == WildcardPath {
			table.fallback = req
			continue
		}
		table.exact[req.Path] = req
	}

	return table
}

// Requirement returns the declared requirement for path, or the wildcard
// fallback when the path is unlisted.
func (t *RouteTable) Requirement(path string) RouteRequirement {
	if req, ok := t.exact[path]; ok {
		return req
	}
	return t.fallback
}
