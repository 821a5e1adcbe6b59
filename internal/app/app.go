// Package app wires configuration, storage, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/survivor-league/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/survivor-league/internal/adapter/postgres/account"
	castawayrepo "github.com/heartmarshall/survivor-league/internal/adapter/postgres/castaway"
	scoringrepo "github.com/heartmarshall/survivor-league/internal/adapter/postgres/scoring"
	selectionrepo "github.com/heartmarshall/survivor-league/internal/adapter/postgres/selection"
	weekrepo "github.com/heartmarshall/survivor-league/internal/adapter/postgres/week"
	"github.com/heartmarshall/survivor-league/internal/adapter/provider/auth0"
	"github.com/heartmarshall/survivor-league/internal/adapter/provider/devtoken"
	"github.com/heartmarshall/survivor-league/internal/auth"
	"github.com/heartmarshall/survivor-league/internal/config"
	"github.com/heartmarshall/survivor-league/internal/service/identity"
	"github.com/heartmarshall/survivor-league/internal/service/picks"
	"github.com/heartmarshall/survivor-league/internal/service/roster"
	"github.com/heartmarshall/survivor-league/internal/service/schedule"
	"github.com/heartmarshall/survivor-league/internal/service/scoring"
	"github.com/heartmarshall/survivor-league/internal/transport/middleware"
	"github.com/heartmarshall/survivor-league/internal/transport/rest"
)

// tokenVerifier matches the middleware's verifier requirement.
type tokenVerifier interface {
	Verify(ctx context.Context, token string) (*auth.Claim, error)
}

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires the services, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.Int("season", cfg.League.Season),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := postgres.Migrate(ctx, cfg.Database); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	accounts := accountrepo.New(pool)
	weeks := weekrepo.New(pool)
	castaways := castawayrepo.New(pool)
	selections := selectionrepo.New(pool)
	events := scoringrepo.New(pool)

	identitySvc := identity.NewService(logger, accounts)
	scheduleSvc := schedule.NewService(logger, weeks, cfg.League.LockGraceWindow)
	picksSvc := picks.NewService(logger, identitySvc, scheduleSvc, selections, txManager, cfg.League)
	rosterSvc := roster.NewService(logger, castaways, cfg.League.Season)
	scoringSvc := scoring.NewService(logger, events, cfg.League.Season)

	var verifier tokenVerifier
	if cfg.Auth.HasAuth0() {
		verifier = auth0.NewVerifier(cfg.Auth.Auth0Domain, cfg.Auth.VerifyTimeout, logger)
		logger.Info("using auth0 verifier", slog.String("domain", cfg.Auth.Auth0Domain))
	} else {
		verifier = devtoken.NewVerifier(cfg.Auth.DevTokenSecret, logger)
		logger.Warn("using dev token verifier; not for production")
	}

	router := rest.NewRouter(
		rest.NewPicksHandler(picksSvc, logger),
		rest.NewRosterHandler(rosterSvc, logger),
		rest.NewScoringHandler(scoringSvc, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(verifier),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
