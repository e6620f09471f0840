// Package routegate enforces declared route requirements on every request.
// Each navigation re-reads the session state and runs the authorization gate;
// denied requests are redirected to the route's fallback path.
package routegate

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"

	auth "github.com/staffdesk/go-auth"
)

// Config wires the middleware to the session core.
type Config struct {
	// Sessions is the read-only session source, usually the SessionManager.
	Sessions auth.SessionSource
	// Routes declares the per-path requirements.
	Routes *auth.RouteTable
	// Gate decides; a nil gate gets a default one.
	Gate *auth.Gate
	// Logger, optional.
	Logger auth.Logger
	// OnDenied, when set, replaces the default redirect response.
	OnDenied func(ctx router.Context, requirement auth.RouteRequirement, decision auth.Decision) error
}

// New returns a middleware evaluating every request against cfg.Routes.
func New(cfg Config) router.MiddlewareFunc {
	gate := cfg.Gate
	if gate == nil {
		gate = auth.NewGate()
	}

	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			requirement := cfg.Routes.Requirement(requestPath(ctx))
			state := cfg.Sessions.Current()

			decision := gate.Decide(requirement, state)
			if decision.Allowed() {
				return next(ctx)
			}

			if cfg.Logger != nil {
				cfg.Logger.Info(
					"route denied",
					"details", print.MaybePrettyJSON(map[string]any{
						"path":           requirement.Path,
						"requires_auth":  requirement.RequiresAuth,
						"requires_admin": requirement.RequiresAdmin,
						"status":         string(state.Status()),
					}),
				)
			}

			if cfg.OnDenied != nil {
				return cfg.OnDenied(ctx, requirement, decision)
			}

			return redirect(ctx, decision)
		}
	}
}

func redirect(ctx router.Context, decision auth.Decision) error {
	target, _ := decision.RedirectPath()
	if target == "" {
		target = "/"
	}

	statusCode := http.StatusSeeOther
	if ctx.Method() == string(router.GET) {
		statusCode = http.StatusFound
	}
	return ctx.Redirect(target, statusCode)
}

// requestPath strips the query string so lookups hit the declared path.
func requestPath(ctx router.Context) string {
	path := ctx.OriginalURL()
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path
}
