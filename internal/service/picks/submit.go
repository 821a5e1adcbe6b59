package picks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/survivor-league/internal/auth"
	"github.com/heartmarshall/survivor-league/internal/domain"
)

// Submit replaces the caller's active picks for one week. The full pipeline:
// validate → resolve identity → load week → gate check → atomic replace.
//
// The gate is checked strictly before the ledger transaction: a locked week
// fails with domain.ErrSubmissionClosed and the ledger is never touched.
// The replace runs under serializable isolation; if a concurrent submission
// for the same account and week forces a serialization failure the whole
// replace is retried once, then the conflict surfaces to the caller.
func (s *Service) Submit(ctx context.Context, claim auth.Claim, in SubmitInput) ([]domain.Selection, error) {
	if err := in.Validate(s.cfg.PickLimit); err != nil {
		return nil, err
	}

	account, err := s.identity.Resolve(ctx, claim)
	if err != nil {
		return nil, fmt.Errorf("picks.Submit resolve identity: %w", err)
	}

	week, err := s.schedule.Week(ctx, s.cfg.Season, in.Episode)
	if err != nil {
		return nil, fmt.Errorf("picks.Submit load week %d: %w", in.Episode, err)
	}

	if week.IsLocked(s.now()) {
		return nil, fmt.Errorf("picks.Submit week %d locked at %s: %w",
			week.Episode, week.LockTime.Format(time.RFC3339), domain.ErrSubmissionClosed)
	}

	inserted, err := s.replace(ctx, account.ID, week.Episode, in.Picks)
	if errors.Is(err, domain.ErrTransient) {
		s.log.WarnContext(ctx, "replace serialization conflict, retrying once",
			slog.String("account_id", account.ID.String()),
			slog.Int("episode", week.Episode))
		inserted, err = s.replace(ctx, account.ID, week.Episode, in.Picks)
	}
	if err != nil {
		return nil, fmt.Errorf("picks.Submit replace: %w", err)
	}

	s.log.InfoContext(ctx, "picks submitted",
		slog.String("account_id", account.ID.String()),
		slog.Int("episode", week.Episode),
		slog.Int("count", len(inserted)))

	return inserted, nil
}

// replace supersedes the active rows and inserts the new picks in one
// serializable transaction. Either every effect lands or none do.
func (s *Service) replace(ctx context.Context, accountID uuid.UUID, episode int, picks []domain.Pick) ([]domain.Selection, error) {
	now := s.now()
	inserted := make([]domain.Selection, 0, len(picks))

	err := s.tx.RunInSerializableTx(ctx, func(txCtx context.Context) error {
		inserted = inserted[:0]

		if _, err := s.selections.RemoveActive(txCtx, accountID, s.cfg.Season, episode, now); err != nil {
			return fmt.Errorf("supersede active picks: %w", err)
		}

		for _, p := range picks {
			created, err := s.selections.Insert(txCtx, &domain.Selection{
				ID:         uuid.New(),
				AccountID:  accountID,
				Season:     s.cfg.Season,
				Episode:    episode,
				CastawayID: p.CastawayID,
				IsCaptain:  p.IsCaptain,
				Source:     domain.SourceUserSubmitted,
				CreatedAt:  now,
			})
			if err != nil {
				return fmt.Errorf("insert pick %s: %w", p.CastawayID, err)
			}
			inserted = append(inserted, *created)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return inserted, nil
}
