package rest

import "net/http"

// NewRouter assembles the HTTP routes. Middleware (request id, logging,
// recovery, CORS, auth) wraps the returned handler in the app layer.
func NewRouter(picks *PicksHandler, roster *RosterHandler, scoring *ScoringHandler, health *HealthHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", health.Live)
	mux.HandleFunc("GET /readyz", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /castaways", roster.Castaways)

	mux.HandleFunc("POST /selections", picks.Submit)
	mux.HandleFunc("GET /selections/me", picks.MyPicks)
	mux.HandleFunc("GET /selections/me/all", picks.AllMyPicks)
	mux.HandleFunc("GET /league/selections", picks.LeaguePicks)

	mux.HandleFunc("GET /scoring/events", scoring.Events)

	// Everything else is a JSON 404, matching the rest of the API surface.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	return mux
}
