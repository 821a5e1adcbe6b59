package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/survivor-league/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. The entity and key
// arguments only decorate the message.
// context.DeadlineExceeded and context.Canceled are NOT mapped — they pass through.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505": // unique_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
		case pgErr.Code == "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
		case pgErr.Code == "23514": // check_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		case pgErr.Code == "40001" || pgErr.Code == "40P01":
			// serialization_failure / deadlock_detected — retryable
			return fmt.Errorf("%s %v: sqlstate %s: %w", entity, key, pgErr.Code, domain.ErrTransient)
		case strings.HasPrefix(pgErr.Code, "08"):
			// connection exceptions — retryable
			return fmt.Errorf("%s %v: sqlstate %s: %w", entity, key, pgErr.Code, domain.ErrTransient)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %v: %w", entity, key, err)
}
