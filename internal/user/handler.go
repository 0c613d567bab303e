package user

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rspur/sampleportal/internal"
	"github.com/rspur/sampleportal/internal/access"
	"github.com/rspur/sampleportal/internal/registry"
	"github.com/rspur/sampleportal/internal/transport"
	"github.com/rspur/sampleportal/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// requireAdminModule gates the admin API on the caller's admin-module level.
// Only SUPER_ADMIN can hold the admin module above NONE, so this is
// effectively super-admin-only without special-casing the role here.
func (h *Handler) requireAdminModule(w http.ResponseWriter, r *http.Request, minimum access.Level) (*User, bool) {
	actor, ok := UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteAppError(w, internal.ErrNoSession)
		return nil, false
	}
	if !access.CanAccess(actor.Role, actor.ModuleAccess, registry.KeyAdmin, minimum) {
		h.Logger.Warn("admin api denied", "user_id", actor.ID, "minimum", minimum)
		h.WriteAppError(w, internal.ErrInsufficientAccess)
		return nil, false
	}
	return actor, true
}

// ListUsers handles GET /api/admin/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdminModule(w, r, access.LevelView); !ok {
		return
	}

	users, err := h.Service.List()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// CreateUser handles POST /api/admin/users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireAdminModule(w, r, access.LevelEdit)
	if !ok {
		return
	}

	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.Logger.Warn("user creation failed", "actor_id", actor.ID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{"user": created})
}

// GrantAccess handles PATCH /api/admin/access
func (h *Handler) GrantAccess(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireAdminModule(w, r, access.LevelEdit)
	if !ok {
		return
	}

	var dto GrantAccessDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.GrantAccess(r.Context(), actor, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": updated})
}
