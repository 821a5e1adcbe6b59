package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/survivor-league/internal/domain"
)

// rosterService defines the minimal interface needed by RosterHandler.
type rosterService interface {
	Castaways(ctx context.Context) ([]domain.Castaway, error)
}

// RosterHandler serves castaway reference data.
type RosterHandler struct {
	svc rosterService
	log *slog.Logger
}

// NewRosterHandler creates a RosterHandler.
func NewRosterHandler(svc rosterService, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{svc: svc, log: logger.With("handler", "roster")}
}

type castawayResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Season         int     `json:"season"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	EliminatedWeek *int    `json:"eliminatedWeek"`
}

// Castaways handles GET /castaways.
func (h *RosterHandler) Castaways(w http.ResponseWriter, r *http.Request) {
	roster, err := h.svc.Castaways(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]castawayResponse, len(roster))
	for i, c := range roster {
		out[i] = castawayResponse{
			ID:             c.ID.String(),
			Name:           c.Name,
			Season:         c.Season,
			ImageURL:       c.ImageURL,
			EliminatedWeek: c.EliminatedWeek,
		}
	}

	writeJSON(w, http.StatusOK, out)
}
