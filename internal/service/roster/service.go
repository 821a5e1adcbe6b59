// Package roster serves castaway reference data for the configured season.
package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/survivor-league/internal/domain"
)

// castawayRepo defines the castaway repository interface needed by the roster.
type castawayRepo interface {
	ListBySeason(ctx context.Context, season int) ([]domain.Castaway, error)
}

// Service serves the castaway roster.
type Service struct {
	log       *slog.Logger
	castaways castawayRepo
	season    int
}

// NewService creates a new roster service instance.
func NewService(logger *slog.Logger, castaways castawayRepo, season int) *Service {
	return &Service{
		log:       logger.With("service", "roster"),
		castaways: castaways,
		season:    season,
	}
}

// Castaways returns the full roster for the configured season, including
// eliminated contestants so the UI can grey them out.
func (s *Service) Castaways(ctx context.Context) ([]domain.Castaway, error) {
	roster, err := s.castaways.ListBySeason(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("roster.Castaways season %d: %w", s.season, err)
	}
	return roster, nil
}
