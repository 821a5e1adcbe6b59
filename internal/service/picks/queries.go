package picks

import (
	"context"
	"fmt"

	"github.com/heartmarshall/survivor-league/internal/auth"
	"github.com/heartmarshall/survivor-league/internal/domain"
)

// ActivePicks returns the caller's active picks for one week. A nil episode
// means "the current week" per the schedule ranking. Reading is never
// gated: callers can review their picks after the deadline.
func (s *Service) ActivePicks(ctx context.Context, claim auth.Claim, episode *int) ([]domain.Selection, error) {
	account, err := s.identity.Resolve(ctx, claim)
	if err != nil {
		return nil, fmt.Errorf("picks.ActivePicks resolve identity: %w", err)
	}

	ep := 0
	if episode != nil {
		ep = *episode
	} else {
		week, err := s.schedule.CurrentWeek(ctx, s.cfg.Season, s.now())
		if err != nil {
			return nil, fmt.Errorf("picks.ActivePicks current week: %w", err)
		}
		ep = week.Episode
	}

	return s.selections.ActiveForWeek(ctx, account.ID, s.cfg.Season, ep)
}

// AllPicks returns every active pick of the caller for the configured
// season, across weeks.
func (s *Service) AllPicks(ctx context.Context, claim auth.Claim) ([]domain.Selection, error) {
	account, err := s.identity.Resolve(ctx, claim)
	if err != nil {
		return nil, fmt.Errorf("picks.AllPicks resolve identity: %w", err)
	}

	return s.selections.ActiveForAccount(ctx, account.ID, s.cfg.Season)
}

// LeaguePicks returns every active pick in the league, redacted per the
// gate: for weeks whose deadline has not passed the castaway identity and
// captain flag are withheld so nobody can copy picks before lock.
func (s *Service) LeaguePicks(ctx context.Context, episode *int) ([]domain.LeagueSelection, error) {
	rows, err := s.selections.ActiveForLeague(ctx, s.cfg.Season, episode)
	if err != nil {
		return nil, fmt.Errorf("picks.LeaguePicks: %w", err)
	}

	now := s.now()
	out := make([]domain.LeagueSelection, len(rows))
	for i, row := range rows {
		view := domain.LeagueSelection{
			ID:        row.ID,
			AccountID: row.AccountID,
			Season:    row.Season,
			Episode:   row.Episode,
			CreatedAt: row.CreatedAt,
		}
		if (domain.Week{LockTime: row.LockTime}).IsLocked(now) {
			castaway := row.CastawayID
			captain := row.IsCaptain
			view.CastawayID = &castaway
			view.IsCaptain = &captain
		}
		out[i] = view
	}

	return out, nil
}
