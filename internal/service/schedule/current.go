package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/heartmarshall/survivor-league/internal/domain"
)

// Ranks for picking the current week. Lower wins.
const (
	rankAiring = iota // deadline passed within the grace window
	rankFuture        // deadline still ahead, nearest first
	rankPast          // older weeks, most recent first
)

// CurrentWeek picks the week a viewer would call "this week's episode".
// A week whose deadline passed within the grace window wins: the episode is
// airing or just aired, and reads should still point at it. Otherwise the
// nearest upcoming deadline wins, and once the season is over the most
// recently locked week wins.
func (s *Service) CurrentWeek(ctx context.Context, season int, now time.Time) (*domain.Week, error) {
	weeks, err := s.weeks.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("schedule.CurrentWeek list season %d: %w", season, err)
	}
	if len(weeks) == 0 {
		return nil, fmt.Errorf("schedule.CurrentWeek season %d has no weeks: %w", season, domain.ErrNotFound)
	}

	sort.SliceStable(weeks, func(i, j int) bool {
		return s.before(weeks[i], weeks[j], now)
	})

	current := weeks[0]
	return &current, nil
}

// before orders candidate weeks by rank, then within a rank by distance
// from now: upcoming deadlines soonest first, past deadlines latest first.
func (s *Service) before(a, b domain.Week, now time.Time) bool {
	ra, rb := s.rank(a, now), s.rank(b, now)
	if ra != rb {
		return ra < rb
	}
	if ra == rankFuture {
		return a.LockTime.Before(b.LockTime)
	}
	return a.LockTime.After(b.LockTime)
}

func (s *Service) rank(w domain.Week, now time.Time) int {
	switch {
	case w.InGraceWindow(now, s.grace):
		return rankAiring
	case !w.IsLocked(now):
		return rankFuture
	default:
		return rankPast
	}
}
