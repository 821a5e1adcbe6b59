// Package scoring serves castaway scoring events and the static point
// weights. Only events belonging to locked weeks are ever returned, so
// episode outcomes cannot leak before the submission gate closes.
package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/survivor-league/internal/domain"
)

// eventRepo defines the event repository interface needed by the service.
type eventRepo interface {
	ListForLockedWeeks(ctx context.Context, season int, now time.Time) ([]domain.CastawayEvent, error)
}

// Service serves scoring data.
type Service struct {
	log    *slog.Logger
	events eventRepo
	season int

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a new scoring service instance.
func NewService(logger *slog.Logger, events eventRepo, season int) *Service {
	return &Service{
		log:    logger.With("service", "scoring"),
		events: events,
		season: season,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Board is the scoring payload: the events that count so far plus the
// weight table clients use to total them.
type Board struct {
	Events  []domain.CastawayEvent
	Weights map[domain.EventType]int
}

// Events returns the season's scoring board as of now.
func (s *Service) Events(ctx context.Context) (*Board, error) {
	events, err := s.events.ListForLockedWeeks(ctx, s.season, s.now())
	if err != nil {
		return nil, fmt.Errorf("scoring.Events season %d: %w", s.season, err)
	}

	return &Board{
		Events:  events,
		Weights: domain.ScoreWeights,
	}, nil
}
