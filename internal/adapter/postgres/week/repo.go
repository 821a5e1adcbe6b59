// Package week implements the Week repository using PostgreSQL.
// Weeks are reference data: read-only in this service.
package week

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/survivor-league/internal/adapter/postgres"
	"github.com/heartmarshall/survivor-league/internal/domain"
)

// Repo provides read access to weeks.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new week repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `
SELECT season, episode_number, lock_time
FROM weeks
WHERE season = $1 AND episode_number = $2`

const listBySeasonSQL = `
SELECT season, episode_number, lock_time
FROM weeks
WHERE season = $1
ORDER BY episode_number`

// weekRow mirrors the weeks table for scany.
type weekRow struct {
	Season        int       `db:"season"`
	EpisodeNumber int       `db:"episode_number"`
	LockTime      time.Time `db:"lock_time"`
}

// Get returns the week for (season, episode).
func (r *Repo) Get(ctx context.Context, season, episode int) (*domain.Week, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row weekRow
	if err := pgxscan.Get(ctx, q, &row, getSQL, season, episode); err != nil {
		return nil, postgres.MapError(err, "week", fmt.Sprintf("%d/%d", season, episode))
	}

	w := toDomain(row)
	return &w, nil
}

// ListBySeason returns all weeks of a season ordered by episode number.
// Returns an empty slice (not nil) when the season has no weeks.
func (r *Repo) ListBySeason(ctx context.Context, season int) ([]domain.Week, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []weekRow
	if err := pgxscan.Select(ctx, q, &rows, listBySeasonSQL, season); err != nil {
		return nil, fmt.Errorf("list weeks for season %d: %w", season, err)
	}

	weeks := make([]domain.Week, len(rows))
	for i, row := range rows {
		weeks[i] = toDomain(row)
	}

	return weeks, nil
}

func toDomain(row weekRow) domain.Week {
	return domain.Week{
		Season:   row.Season,
		Episode:  row.EpisodeNumber,
		LockTime: row.LockTime,
	}
}
