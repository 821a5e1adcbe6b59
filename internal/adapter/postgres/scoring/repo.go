// Package scoring implements read access to castaway scoring events.
// Events follow the ledger's soft-delete convention (removed_at IS NULL
// means the event counts) and are written by an out-of-scope admin path.
package scoring

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/survivor-league/internal/adapter/postgres"
	"github.com/heartmarshall/survivor-league/internal/domain"
)

// Repo provides read access to castaway events.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new scoring repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// eventRow mirrors the castaway_events table for scany.
type eventRow struct {
	ID            uuid.UUID  `db:"id"`
	CastawayID    uuid.UUID  `db:"castaway_id"`
	Season        int        `db:"season"`
	EpisodeNumber int        `db:"episode_number"`
	EventType     string     `db:"event_type"`
	CreatedAt     time.Time  `db:"created_at"`
	RemovedAt     *time.Time `db:"removed_at"`
}

// ListForLockedWeeks returns the season's counting events for weeks whose
// deadline has passed as of now. Events for still-open weeks never leave the
// store, so scoring can't leak results before an episode locks.
func (r *Repo) ListForLockedWeeks(ctx context.Context, season int, now time.Time) ([]domain.CastawayEvent, error) {
	sql, args, err := psql.
		Select("e.id", "e.castaway_id", "e.season", "e.episode_number",
			"e.event_type", "e.created_at", "e.removed_at").
		From("castaway_events e").
		Join("weeks w ON w.season = e.season AND w.episode_number = e.episode_number").
		Where(sq.Eq{"e.season": season}).
		Where("e.removed_at IS NULL").
		Where(sq.LtOrEq{"w.lock_time": now}).
		OrderBy("e.episode_number", "e.created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scoring events query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []eventRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "castaway_event", season)
	}

	events := make([]domain.CastawayEvent, len(rows))
	for i, row := range rows {
		events[i] = domain.CastawayEvent{
			ID:         row.ID,
			CastawayID: row.CastawayID,
			Season:     row.Season,
			Episode:    row.EpisodeNumber,
			EventType:  domain.EventType(row.EventType),
			CreatedAt:  row.CreatedAt,
			RemovedAt:  row.RemovedAt,
		}
	}

	return events, nil
}
