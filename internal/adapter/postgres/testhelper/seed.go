package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/survivor-league/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount inserts an account with unique subject and email.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	account := domain.Account{
		ID:        uuid.New(),
		Subject:   "auth0|" + suffix,
		Email:     "member-" + suffix + "@example.com",
		Name:      "Member " + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO accounts (id, subject, email, name, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		account.ID, account.Subject, account.Email, account.Name, account.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert: %v", err)
	}

	return account
}

// SeedWeek inserts a week with the given lock time.
func SeedWeek(t *testing.T, pool *pgxpool.Pool, season, episode int, lockTime time.Time) domain.Week {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO weeks (season, episode_number, lock_time)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (season, episode_number) DO UPDATE SET lock_time = EXCLUDED.lock_time`,
		season, episode, lockTime,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWeek insert: %v", err)
	}

	return domain.Week{Season: season, Episode: episode, LockTime: lockTime}
}

// SeedCastaway inserts a castaway for the given season.
func SeedCastaway(t *testing.T, pool *pgxpool.Pool, season int) domain.Castaway {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	c := domain.Castaway{
		ID:     uuid.New(),
		Name:   "Castaway " + suffix,
		Season: season,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO castaways (id, name, season) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.Season,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCastaway insert: %v", err)
	}

	return c
}

// SeedEvent inserts an active castaway event.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, castawayID uuid.UUID, season, episode int, eventType domain.EventType) domain.CastawayEvent {
	t.Helper()
	ctx := context.Background()

	e := domain.CastawayEvent{
		ID:         uuid.New(),
		CastawayID: castawayID,
		Season:     season,
		Episode:    episode,
		EventType:  eventType,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO castaway_events (id, castaway_id, season, episode_number, event_type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.CastawayID, e.Season, e.Episode, string(e.EventType), e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert: %v", err)
	}

	return e
}
