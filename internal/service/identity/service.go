// Package identity resolves verified external identity claims into durable
// local accounts. It is the only place in the system that reasons about
// write-write races on account creation.
package identity

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/survivor-league/internal/domain"
)

// accountRepo defines the account repository interface needed by the resolver.
type accountRepo interface {
	GetBySubject(ctx context.Context, subject string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
}

// Service implements identity resolution.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
}

// NewService creates a new identity service instance.
func NewService(logger *slog.Logger, accounts accountRepo) *Service {
	return &Service{
		log:      logger.With("service", "identity"),
		accounts: accounts,
	}
}
