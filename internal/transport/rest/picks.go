package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/survivor-league/internal/auth"
	"github.com/heartmarshall/survivor-league/internal/domain"
	"github.com/heartmarshall/survivor-league/internal/service/picks"
	"github.com/heartmarshall/survivor-league/pkg/ctxutil"
)

// picksService defines the minimal interface needed by PicksHandler.
type picksService interface {
	Submit(ctx context.Context, claim auth.Claim, in picks.SubmitInput) ([]domain.Selection, error)
	ActivePicks(ctx context.Context, claim auth.Claim, episode *int) ([]domain.Selection, error)
	AllPicks(ctx context.Context, claim auth.Claim) ([]domain.Selection, error)
	LeaguePicks(ctx context.Context, episode *int) ([]domain.LeagueSelection, error)
}

// PicksHandler serves the selection endpoints.
type PicksHandler struct {
	svc picksService
	log *slog.Logger
}

// NewPicksHandler creates a PicksHandler.
func NewPicksHandler(svc picksService, logger *slog.Logger) *PicksHandler {
	return &PicksHandler{svc: svc, log: logger.With("handler", "picks")}
}

type submitRequest struct {
	Week  int           `json:"week"`
	Picks []pickRequest `json:"picks"`
}

type pickRequest struct {
	CastawayID string `json:"castawayId"`
	IsCaptain  bool   `json:"isCaptain"`
}

type selectionResponse struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"accountId"`
	Season     int       `json:"season"`
	Week       int       `json:"week"`
	CastawayID string    `json:"castawayId"`
	IsCaptain  bool      `json:"isCaptain"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"createdAt"`
}

type leagueSelectionResponse struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"accountId"`
	Season     int       `json:"season"`
	Week       int       `json:"week"`
	CastawayID *string   `json:"castawayId"`
	IsCaptain  *bool     `json:"isCaptain"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Submit handles POST /selections.
func (h *PicksHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claim, ok := ctxutil.ClaimFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := picks.SubmitInput{Episode: req.Week, Picks: make([]domain.Pick, 0, len(req.Picks))}
	for _, p := range req.Picks {
		castawayID, err := uuid.Parse(p.CastawayID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid castaway id")
			return
		}
		in.Picks = append(in.Picks, domain.Pick{CastawayID: castawayID, IsCaptain: p.IsCaptain})
	}

	created, err := h.svc.Submit(r.Context(), claim, in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSelectionResponses(created))
}

// MyPicks handles GET /selections/me. An absent week query parameter means
// the current week.
func (h *PicksHandler) MyPicks(w http.ResponseWriter, r *http.Request) {
	claim, ok := ctxutil.ClaimFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	episode, err := episodeParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week parameter")
		return
	}

	selections, err := h.svc.ActivePicks(r.Context(), claim, episode)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSelectionResponses(selections))
}

// AllMyPicks handles GET /selections/me/all.
func (h *PicksHandler) AllMyPicks(w http.ResponseWriter, r *http.Request) {
	claim, ok := ctxutil.ClaimFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	selections, err := h.svc.AllPicks(r.Context(), claim)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSelectionResponses(selections))
}

// LeaguePicks handles GET /league/selections. Public: rows for weeks whose
// gate is still open arrive redacted from the service.
func (h *PicksHandler) LeaguePicks(w http.ResponseWriter, r *http.Request) {
	episode, err := episodeParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week parameter")
		return
	}

	selections, err := h.svc.LeaguePicks(r.Context(), episode)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]leagueSelectionResponse, len(selections))
	for i, s := range selections {
		resp := leagueSelectionResponse{
			ID:        s.ID.String(),
			AccountID: s.AccountID.String(),
			Season:    s.Season,
			Week:      s.Episode,
			IsCaptain: s.IsCaptain,
			CreatedAt: s.CreatedAt,
		}
		if s.CastawayID != nil {
			id := s.CastawayID.String()
			resp.CastawayID = &id
		}
		out[i] = resp
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *PicksHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrSubmissionClosed):
		writeError(w, http.StatusBadRequest, "submissions are closed for this week")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrTransient):
		// Already retried once at the pipeline; a second failure is a
		// store problem, not something the client can resolve.
		h.log.ErrorContext(r.Context(), "transient store error after retry", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// episodeParam parses the optional ?week=N query parameter.
func episodeParam(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get("week")
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return nil, errors.New("invalid week")
	}
	return &n, nil
}

func toSelectionResponses(selections []domain.Selection) []selectionResponse {
	out := make([]selectionResponse, len(selections))
	for i, s := range selections {
		out[i] = selectionResponse{
			ID:         s.ID.String(),
			AccountID:  s.AccountID.String(),
			Season:     s.Season,
			Week:       s.Episode,
			CastawayID: s.CastawayID.String(),
			IsCaptain:  s.IsCaptain,
			Source:     s.Source.String(),
			CreatedAt:  s.CreatedAt,
		}
	}
	return out
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
