// Package castaway implements the Castaway roster repository using
// PostgreSQL. The roster is reference data: read-only in this service.
package castaway

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/survivor-league/internal/adapter/postgres"
	"github.com/heartmarshall/survivor-league/internal/domain"
)

// Repo provides read access to the castaway roster.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new castaway repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listBySeasonSQL = `
SELECT id, name, season, image_url, eliminated_week
FROM castaways
WHERE season = $1
ORDER BY name`

// castawayRow mirrors the castaways table for scany.
type castawayRow struct {
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	Season         int       `db:"season"`
	ImageURL       *string   `db:"image_url"`
	EliminatedWeek *int      `db:"eliminated_week"`
}

// ListBySeason returns the full roster for a season ordered by name.
// Returns an empty slice (not nil) when the season has no castaways.
func (r *Repo) ListBySeason(ctx context.Context, season int) ([]domain.Castaway, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []castawayRow
	if err := pgxscan.Select(ctx, q, &rows, listBySeasonSQL, season); err != nil {
		return nil, fmt.Errorf("list castaways for season %d: %w", season, err)
	}

	roster := make([]domain.Castaway, len(rows))
	for i, row := range rows {
		roster[i] = toDomain(row)
	}

	return roster, nil
}

func toDomain(row castawayRow) domain.Castaway {
	return domain.Castaway{
		ID:             row.ID,
		Name:           row.Name,
		Season:         row.Season,
		ImageURL:       row.ImageURL,
		EliminatedWeek: row.EliminatedWeek,
	}
}
