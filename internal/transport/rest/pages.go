package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/rspur/sampleportal/internal/access"
	"github.com/rspur/sampleportal/internal/registry"
	"github.com/rspur/sampleportal/internal/transport"
	"github.com/rspur/sampleportal/internal/transport/middleware"
	"github.com/rspur/sampleportal/pkg/logger"
)

// PagesHandler serves the guarded portal page routes. Rendering is a thin
// JSON workbench summary; the interesting part is that nothing here runs
// before the route guard has resolved and authorized the user.
type PagesHandler struct {
	*transport.BaseHandler
	guard *middleware.Guard
}

func NewPagesHandler(guard *middleware.Guard) *PagesHandler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &PagesHandler{
		BaseHandler: transport.NewBaseHandler(lg),
		guard:       guard,
	}
}

// Root handles GET / — the portal entry always lands on the dashboard.
func (h *PagesHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// LoginPage handles GET /login, the public destination of the
// unauthenticated redirect.
func (h *PagesHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"page":  "login",
		"login": "/api/auth/login",
	})
}

// ModulePage handles GET /{module}. The guard enforces VIEW; whether edit
// controls are exposed is a second, finer-grained check the page performs
// itself and is not implied by passing the guard.
func (h *PagesHandler) ModulePage(w http.ResponseWriter, r *http.Request) {
	rawModule := chi.URLParam(r, "module")

	u, ok := h.guard.RequireModuleAccess(w, r, rawModule, access.LevelView)
	if !ok {
		return
	}

	module, _ := registry.Parse(rawModule)
	entry, _ := registry.Lookup(module)

	level := u.ModuleAccess[module]
	if u.Role == access.RoleSuperAdmin {
		level = access.LevelAdmin
	}

	page := map[string]interface{}{
		"module":      entry.Key,
		"label":       entry.Label,
		"description": entry.Description,
		"user": map[string]interface{}{
			"id":   u.ID,
			"name": u.Name,
			"role": u.Role,
		},
		"access_level": level,
		"can_edit":     access.CanAccess(u.Role, u.ModuleAccess, module, access.LevelEdit),
	}

	// The denial redirect lands here with the marker so the dashboard can
	// render an "insufficient access" notice.
	if module == registry.KeyDashboard && r.URL.Query().Get("blocked") == "1" {
		page["blocked"] = true
	}

	h.WriteJSON(w, http.StatusOK, page)
}
