package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/survivor-league/internal/service/scoring"
)

// scoringService defines the minimal interface needed by ScoringHandler.
type scoringService interface {
	Events(ctx context.Context) (*scoring.Board, error)
}

// ScoringHandler serves scoring data.
type ScoringHandler struct {
	svc scoringService
	log *slog.Logger
}

// NewScoringHandler creates a ScoringHandler.
func NewScoringHandler(svc scoringService, logger *slog.Logger) *ScoringHandler {
	return &ScoringHandler{svc: svc, log: logger.With("handler", "scoring")}
}

type eventResponse struct {
	ID         string    `json:"id"`
	CastawayID string    `json:"castawayId"`
	Season     int       `json:"season"`
	Week       int       `json:"week"`
	EventType  string    `json:"eventType"`
	CreatedAt  time.Time `json:"createdAt"`
}

type boardResponse struct {
	Events  []eventResponse `json:"events"`
	Weights map[string]int  `json:"weights"`
}

// Events handles GET /scoring/events. Only events for locked weeks appear.
func (h *ScoringHandler) Events(w http.ResponseWriter, r *http.Request) {
	board, err := h.svc.Events(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	events := make([]eventResponse, len(board.Events))
	for i, e := range board.Events {
		events[i] = eventResponse{
			ID:         e.ID.String(),
			CastawayID: e.CastawayID.String(),
			Season:     e.Season,
			Week:       e.Episode,
			EventType:  string(e.EventType),
			CreatedAt:  e.CreatedAt,
		}
	}

	weights := make(map[string]int, len(board.Weights))
	for k, v := range board.Weights {
		weights[string(k)] = v
	}

	writeJSON(w, http.StatusOK, boardResponse{Events: events, Weights: weights})
}
