package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/survivor-league/internal/auth"
	"github.com/heartmarshall/survivor-league/internal/domain"
)

// Resolve maps a verified identity claim to exactly one durable account.
//
// Fast path: lookup by subject, no write. First sight: insert with email as
// the conflict key, skipping the insert if the email is already taken so a
// stored subject is never overwritten. On conflict the winning row is
// re-read by subject (a concurrent request's insert won and assigned this
// subject) and then by email (the stored row carries an earlier subject,
// e.g. the provider rotated subjects for an existing email). If neither
// lookup observes a row the store is in an anomalous state and Resolve
// fails with domain.ErrIdentityConflict — one retry round, never a loop.
func (s *Service) Resolve(ctx context.Context, claim auth.Claim) (*domain.Account, error) {
	if claim.Subject == "" || claim.Email == "" {
		return nil, domain.NewValidationError("claim", "subject and email are required")
	}

	email := strings.ToLower(strings.TrimSpace(claim.Email))

	account, err := s.accounts.GetBySubject(ctx, claim.Subject)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("identity.Resolve get by subject: %w", err)
	}

	created, err := s.accounts.Create(ctx, &domain.Account{
		ID:        uuid.New(),
		Subject:   claim.Subject,
		Email:     email,
		Name:      claim.Name,
		CreatedAt: time.Now().UTC(),
	})
	if err == nil {
		s.log.InfoContext(ctx, "account created",
			slog.String("account_id", created.ID.String()))
		return created, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("identity.Resolve create account: %w", err)
	}

	return s.reresolve(ctx, claim.Subject, email)
}

// reresolve is the single bounded retry round after a lost insert race.
func (s *Service) reresolve(ctx context.Context, subject, email string) (*domain.Account, error) {
	account, err := s.accounts.GetBySubject(ctx, subject)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("identity.Resolve re-read by subject: %w", err)
	}

	account, err = s.accounts.GetByEmail(ctx, email)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("identity.Resolve re-read by email: %w", err)
	}

	// A row blocked our insert but neither key can see it. Surface loudly
	// instead of retrying forever.
	s.log.ErrorContext(ctx, "identity conflict: conflicting account row is unobservable",
		slog.String("subject", subject))

	return nil, fmt.Errorf("identity.Resolve subject %s: %w", subject, domain.ErrIdentityConflict)
}
