// Package selection implements the picks ledger repository using
// PostgreSQL. The ledger is append-only: rows are inserted active
// (removed_at IS NULL) and superseded exactly once by stamping removed_at.
// Nothing is ever deleted.
package selection

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

// LeagueRow is a ledger row joined with its week's lock time. The picks
// service uses LockTime to decide whether the castaway identity must be
// redacted for public display.
type LeagueRow struct {
	domain.Selection
	LockTime time.Time
}

// Repo provides selection persistence backed by PostgreSQL. The picks
// service is the only writer; Insert and RemoveActive are only meaningful
// inside the transaction it opens.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new selection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectionColumns = `id, account_id, season, episode_number, castaway_id, is_captain, source, created_at, removed_at`

const activeForWeekSQL = `
SELECT ` + selectionColumns + `
FROM selections
WHERE account_id = $1 AND season = $2 AND episode_number = $3 AND removed_at IS NULL
ORDER BY created_at`

const activeForAccountSQL = `
SELECT ` + selectionColumns + `
FROM selections
WHERE account_id = $1 AND season = $2 AND removed_at IS NULL
ORDER BY episode_number, created_at`

const removeActiveSQL = `
UPDATE selections
SET removed_at = $4
WHERE account_id = $1 AND season = $2 AND episode_number = $3 AND removed_at IS NULL`

const insertSQL = `
INSERT INTO selections (id, account_id, season, episode_number, castaway_id, is_captain, source, created_at, removed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULL)
RETURNING ` + selectionColumns

// selectionRow mirrors the selections table for scany.
type selectionRow struct {
	ID            uuid.UUID  `db:"id"`
	AccountID     uuid.UUID  `db:"account_id"`
	Season        int        `db:"season"`
	EpisodeNumber int        `db:"episode_number"`
	CastawayID    uuid.UUID  `db:"castaway_id"`
	IsCaptain     bool       `db:"is_captain"`
	Source        string     `db:"source"`
	CreatedAt     time.Time  `db:"created_at"`
	RemovedAt     *time.Time `db:"removed_at"`
}

// leagueRowScan extends selectionRow with the joined lock time.
type leagueRowScan struct {
	selectionRow
	LockTime time.Time `db:"lock_time"`
}

// ActiveForWeek returns the active selections of one account for one week.
// Returns an empty slice (not nil) when the account has no active picks.
func (r *Repo) ActiveForWeek(ctx context.Context, accountID uuid.UUID, season, episode int) ([]domain.Selection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []selectionRow
	if err := pgxscan.Select(ctx, q, &rows, activeForWeekSQL, accountID, season, episode); err != nil {
		return nil, postgres.MapError(err, "selection", accountID)
	}

	return toDomainSlice(rows), nil
}

// ActiveForAccount returns all active selections of one account for a
// season, across weeks.
func (r *Repo) ActiveForAccount(ctx context.Context, accountID uuid.UUID, season int) ([]domain.Selection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []selectionRow
	if err := pgxscan.Select(ctx, q, &rows, activeForAccountSQL, accountID, season); err != nil {
		return nil, postgres.MapError(err, "selection", accountID)
	}

	return toDomainSlice(rows), nil
}

// ActiveForLeague returns every active selection in a season joined with the
// owning week's lock time. Pass a non-nil episode to restrict to one week.
// The query is built dynamically because the episode filter is optional.
func (r *Repo) ActiveForLeague(ctx context.Context, season int, episode *int) ([]LeagueRow, error) {
	builder := psql.
		Select("s.id", "s.account_id", "s.season", "s.episode_number",
			"s.castaway_id", "s.is_captain", "s.source", "s.created_at",
			"s.removed_at", "w.lock_time").
		From("selections s").
		Join("weeks w ON w.season = s.season AND w.episode_number = s.episode_number").
		Where(sq.Eq{"s.season": season}).
		Where("s.removed_at IS NULL").
		OrderBy("s.episode_number", "s.created_at")

	if episode != nil {
		builder = builder.Where(sq.Eq{"s.episode_number": *episode})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build league selections query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []leagueRowScan
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "selection", season)
	}

	result := make([]LeagueRow, len(rows))
	for i, row := range rows {
		result[i] = LeagueRow{
			Selection: toDomain(row.selectionRow),
			LockTime:  row.LockTime,
		}
	}

	return result, nil
}

// RemoveActive stamps removed_at on every active selection for the exact
// (account, season, episode) triple and returns the number of rows
// superseded. The transition is monotonic: the removed_at IS NULL guard
// means a row can be superseded at most once.
func (r *Repo) RemoveActive(ctx context.Context, accountID uuid.UUID, season, episode int, at time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, removeActiveSQL, accountID, season, episode, at)
	if err != nil {
		return 0, postgres.MapError(err, "selection", accountID)
	}

	return tag.RowsAffected(), nil
}

// Insert writes one new active ledger row. Multi-pick submissions call this
// once per pick inside the same transaction rather than assembling a
// variable-width VALUES list.
func (r *Repo) Insert(ctx context.Context, s *domain.Selection) (*domain.Selection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row selectionRow
	err := pgxscan.Get(ctx, q, &row, insertSQL,
		s.ID, s.AccountID, s.Season, s.Episode, s.CastawayID,
		s.IsCaptain, s.Source.String(), s.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "selection", s.ID)
	}

	created := toDomain(row)
	return &created, nil
}

func toDomain(row selectionRow) domain.Selection {
	return domain.Selection{
		ID:         row.ID,
		AccountID:  row.AccountID,
		Season:     row.Season,
		Episode:    row.EpisodeNumber,
		CastawayID: row.CastawayID,
		IsCaptain:  row.IsCaptain,
		Source:     domain.SelectionSource(row.Source),
		CreatedAt:  row.CreatedAt,
		RemovedAt:  row.RemovedAt,
	}
}

func toDomainSlice(rows []selectionRow) []domain.Selection {
	result := make([]domain.Selection, len(rows))
	for i, row := range rows {
		result[i] = toDomain(row)
	}
	return result
}
