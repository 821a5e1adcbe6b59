// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/survivor-league/internal/adapter/postgres"
	"github.com/heartmarshall/survivor-league/internal/domain"
)

// Repo provides account persistence backed by PostgreSQL. The identity
// resolver is the only writer; everything else reads.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getBySubjectSQL = `
SELECT id, subject, email, name, created_at
FROM accounts
WHERE subject = $1`

const getByEmailSQL = `
SELECT id, subject, email, name, created_at
FROM accounts
WHERE email = $1`

// Email is the conflict key: a concurrent create for the same email, or a
// provider-side subject rotation, must never overwrite the stored subject.
// DO NOTHING means the losing insert returns no row at all.
const createSQL = `
INSERT INTO accounts (id, subject, email, name, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO NOTHING
RETURNING id, subject, email, name, created_at`

// GetBySubject returns the account for an external subject identifier.
func (r *Repo) GetBySubject(ctx context.Context, subject string) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAccount(q.QueryRow(ctx, getBySubjectSQL, subject))
	if err != nil {
		return nil, postgres.MapError(err, "account", subject)
	}

	return a, nil
}

// GetByEmail returns the account for an email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAccount(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "account", email)
	}

	return a, nil
}

// Create inserts a new account with email as the conflict key. If a row with
// that email already exists the insert is a no-op and Create returns
// domain.ErrAlreadyExists; the caller re-resolves by subject or email.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanAccount(q.QueryRow(ctx, createSQL,
		a.ID, a.Subject, a.Email, a.Name, a.CreatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// ON CONFLICT DO NOTHING: another row owns this email.
			return nil, fmt.Errorf("account %s: %w", a.Email, domain.ErrAlreadyExists)
		}
		return nil, postgres.MapError(err, "account", a.Email)
	}

	return created, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		id        uuid.UUID
		subject   string
		email     string
		name      string
		createdAt time.Time
	)

	if err := row.Scan(&id, &subject, &email, &name, &createdAt); err != nil {
		return nil, err
	}

	return &domain.Account{
		ID:        id,
		Subject:   subject,
		Email:     email,
		Name:      name,
		CreatedAt: createdAt,
	}, nil
}
