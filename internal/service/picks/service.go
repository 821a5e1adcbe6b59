// Package picks orchestrates the pick submission pipeline and the read
// paths over the selection ledger: resolve the caller's identity, gate on
// the week's deadline, and replace the active pick set atomically.
package picks

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/survivor-league/internal/adapter/postgres/selection"
	"github.com/heartmarshall/survivor-league/internal/auth"
	"github.com/heartmarshall/survivor-league/internal/config"
	"github.com/heartmarshall/survivor-league/internal/domain"
)

// resolver maps a verified claim to a durable account.
type resolver interface {
	Resolve(ctx context.Context, claim auth.Claim) (*domain.Account, error)
}

// scheduler supplies week reference data and the current-week choice.
type scheduler interface {
	Week(ctx context.Context, season, episode int) (*domain.Week, error)
	CurrentWeek(ctx context.Context, season int, now time.Time) (*domain.Week, error)
}

// selectionRepo defines the ledger operations needed by the pipeline.
type selectionRepo interface {
	ActiveForWeek(ctx context.Context, accountID uuid.UUID, season, episode int) ([]domain.Selection, error)
	ActiveForAccount(ctx context.Context, accountID uuid.UUID, season int) ([]domain.Selection, error)
	ActiveForLeague(ctx context.Context, season int, episode *int) ([]selection.LeagueRow, error)
	RemoveActive(ctx context.Context, accountID uuid.UUID, season, episode int, at time.Time) (int64, error)
	Insert(ctx context.Context, s *domain.Selection) (*domain.Selection, error)
}

// txManager runs the replace under serializable isolation.
type txManager interface {
	RunInSerializableTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements pick submission and ledger reads.
type Service struct {
	log        *slog.Logger
	identity   resolver
	schedule   scheduler
	selections selectionRepo
	tx         txManager
	cfg        config.LeagueConfig

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a new picks service instance.
func NewService(
	logger *slog.Logger,
	identity resolver,
	schedule scheduler,
	selections selectionRepo,
	tx txManager,
	cfg config.LeagueConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "picks"),
		identity:   identity,
		schedule:   schedule,
		selections: selections,
		tx:         tx,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}
