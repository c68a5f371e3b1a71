package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

const (
	statusOK       = "ok"
	statusDown     = "down"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// livenessResponse is the body of GET /health/live.
type livenessResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// readinessResponse is the body of GET /health/ready.
type readinessResponse struct {
	Status string                 `json:"status"`
	Checks map[string]checkResult `json:"checks"`
}

type checkResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	started  time.Time
	now      func() time.Time
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry, started: time.Now(), now: time.Now}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, livenessResponse{
		Status:        statusOK,
		UptimeSeconds: int64(h.now().Sub(h.started).Seconds()),
	})
}

// Readiness handles GET /health/ready. Returns 200 if the backend clients,
// the session store and the notification hub all report healthy, 503
// otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{Status: statusReady, Checks: make(map[string]checkResult, len(results))}
	code := http.StatusOK
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = checkResult{Status: statusDown, Error: err.Error()}
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = checkResult{Status: statusOK}
	}

	writeJSON(w, code, resp)
}
