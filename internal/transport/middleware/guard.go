package middleware

import (
	"log/slog"
	"net/http"

	"github.com/rspur/sampleportal/internal/access"
	"github.com/rspur/sampleportal/internal/auth"
	"github.com/rspur/sampleportal/internal/core/events"
	"github.com/rspur/sampleportal/internal/registry"
	"github.com/rspur/sampleportal/internal/user"
)

// Fixed redirect destinations. Unauthenticated requests go back to login;
// authenticated but under-ranked requests land on the dashboard with a
// denial marker so the page can render a notice. The two outcomes must stay
// distinct: a denied user is still logged in.
const (
	LoginPath  = "/login"
	DeniedPath = "/dashboard?blocked=1"
)

// Guard is the enforcement point for portal page routes. Every failed check
// terminates at a fixed outcome; nothing downstream runs without a resolved
// user.
type Guard struct {
	auth   auth.ServiceAPI
	bus    *events.EventBus
	logger *slog.Logger
}

func NewGuard(authSvc auth.ServiceAPI, bus *events.EventBus, logger *slog.Logger) *Guard {
	return &Guard{auth: authSvc, bus: bus, logger: logger}
}

// sessionUser resolves the session cookie to a live user. Every failure
// variant collapses to nil; the variant is logged so operators can still
// tell a tampered token from an expired one.
func (g *Guard) sessionUser(r *http.Request) *user.User {
	cookie, err := r.Cookie(auth.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	u, err := g.auth.Resolve(cookie.Value)
	if err != nil {
		g.logger.Debug("session resolution failed", "cause", err, "path", r.URL.Path)
		return nil
	}
	return u
}

// RequireSession returns the resolved user, or redirects to the login entry
// point and reports false.
func (g *Guard) RequireSession(w http.ResponseWriter, r *http.Request) (*user.User, bool) {
	u := g.sessionUser(r)
	if u == nil {
		http.Redirect(w, r, LoginPath, http.StatusFound)
		return nil, false
	}
	return u, true
}

// RequireModuleAccess runs the full authorization journey for a page
// request: session, registry membership, then the access check. An
// unregistered module is a hard not-found, distinct from a denial.
func (g *Guard) RequireModuleAccess(w http.ResponseWriter, r *http.Request, rawModule string, minimum access.Level) (*user.User, bool) {
	u, ok := g.RequireSession(w, r)
	if !ok {
		return nil, false
	}

	module, ok := registry.Parse(rawModule)
	if !ok {
		http.NotFound(w, r)
		return nil, false
	}

	if !access.CanAccess(u.Role, u.ModuleAccess, module, minimum) {
		g.logger.Warn("module access denied",
			"user_id", u.ID,
			"module", module,
			"minimum", minimum)
		_ = g.bus.Publish(r.Context(), events.AccessDenied(u.ID, string(module), string(minimum)))
		http.Redirect(w, r, DeniedPath, http.StatusFound)
		return nil, false
	}

	return u, true
}
