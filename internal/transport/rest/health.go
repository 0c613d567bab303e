package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rspur/sampleportal/internal/user"
)

type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthUnhealthy HealthStatus = "unhealthy"
)

type HealthResponse struct {
	Status     HealthStatus          `json:"status"`
	Service    string                `json:"service"`
	CheckedAt  time.Time             `json:"checked_at"`
	Components map[string]CheckEntry `json:"components"`
}

type CheckEntry struct {
	Status    HealthStatus   `json:"status"`
	Message   string         `json:"message,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CheckedAt time.Time      `json:"checked_at"`
}

type HealthHandler struct {
	directory user.Directory
	startedAt time.Time
}

func NewHealthHandler(directory user.Directory) *HealthHandler {
	return &HealthHandler{directory: directory, startedAt: time.Now()}
}

// pingHandler just says the service is up
func (h *HealthHandler) pingHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "OK"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// healthCheckHandler reports the user directory state. There is no database
// behind this service; an empty directory is the only unhealthy condition.
func (h *HealthHandler) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.directory.ListAll()

	entry := CheckEntry{
		Status:    HealthHealthy,
		CheckedAt: time.Now(),
	}

	switch {
	case err != nil:
		entry.Status = HealthUnhealthy
		entry.Message = err.Error()
	case len(users) == 0:
		entry.Status = HealthUnhealthy
		entry.Message = "user directory is empty"
	default:
		entry.Details = map[string]any{"user_count": len(users)}
	}

	resp := HealthResponse{
		Status:     entry.Status,
		Service:    "sampleportal-rspur",
		CheckedAt:  time.Now(),
		Components: map[string]CheckEntry{"directory": entry},
	}
	resp.Components["uptime"] = CheckEntry{
		Status:    HealthHealthy,
		CheckedAt: time.Now(),
		Details:   map[string]any{"uptime_seconds": int64(time.Since(h.startedAt).Seconds())},
	}

	statusCode := http.StatusOK
	if entry.Status == HealthUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}
