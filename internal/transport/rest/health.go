package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness, and full health endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	started time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, started: time.Now()}
}

// HealthResponse is the JSON response for the health endpoints.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Uptime     string                     `json:"uptime,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus is the status of an individual component.
type ComponentStatus struct {
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

// Ready is the readiness probe: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, db := h.pingDB(r.Context())

	resp := HealthResponse{Status: "ok", Timestamp: time.Now()}
	if db.Status != "ok" {
		resp.Status = "down"
	}
	writeJSON(w, status, resp)
}

// Health is the full health check: database component with measured
// latency, build version, and process uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, db := h.pingDB(r.Context())

	overall := "ok"
	if db.Status != "ok" {
		overall = "down"
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Uptime:     time.Since(h.started).Round(time.Second).String(),
		Components: map[string]ComponentStatus{"database": db},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) (int, ComponentStatus) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return http.StatusServiceUnavailable, ComponentStatus{Status: "down"}
	}
	return http.StatusOK, ComponentStatus{
		Status:  "ok",
		Latency: time.Since(start).String(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
