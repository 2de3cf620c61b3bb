package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the JSON response for /health and /health/ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the database: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		status = "down"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overall := "ok"

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		overall = "down"
	} else {
		components["database"] = CompStatus{
			Status:  "ok",
			Latency: time.Since(start).String(),
		}
	}

	code := http.StatusOK
	if overall != "ok" {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
