// Package schedule answers "which week is it" and whether a week's
// submission gate is open. All time comparisons take an explicit now so
// the logic stays testable without a clock.
package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/survivor-league/internal/domain"
)

// weekRepo defines the week repository interface needed by the scheduler.
type weekRepo interface {
	Get(ctx context.Context, season, episode int) (*domain.Week, error)
	ListBySeason(ctx context.Context, season int) ([]domain.Week, error)
}

// Service implements week scheduling and the submission gate.
type Service struct {
	log   *slog.Logger
	weeks weekRepo
	grace time.Duration
}

// NewService creates a new schedule service instance. grace is the window
// after a week's deadline during which that week still counts as current.
func NewService(logger *slog.Logger, weeks weekRepo, grace time.Duration) *Service {
	return &Service{
		log:   logger.With("service", "schedule"),
		weeks: weeks,
		grace: grace,
	}
}

// Week returns the week for (season, episode).
func (s *Service) Week(ctx context.Context, season, episode int) (*domain.Week, error) {
	return s.weeks.Get(ctx, season, episode)
}
