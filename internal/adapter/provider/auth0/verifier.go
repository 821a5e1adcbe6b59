// Package auth0 verifies bearer tokens against the Auth0 userinfo endpoint.
// The service never parses Auth0 access tokens itself: presenting the token
// back to the issuer and getting a profile is the verification.
package auth0

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/survivor-league/internal/auth"
	"github.com/heartmarshall/survivor-league/internal/domain"
)

// Verifier resolves a bearer token to an identity claim via Auth0.
type Verifier struct {
	userinfoURL string
	httpClient  *http.Client
	log         *slog.Logger
}

// NewVerifier creates an Auth0 verifier for the given tenant domain
// (e.g. "league.us.auth0.com"). Timeout bounds each userinfo call.
func NewVerifier(domainName string, timeout time.Duration, logger *slog.Logger) *Verifier {
	host := strings.TrimSuffix(strings.TrimPrefix(domainName, "https://"), "/")
	return &Verifier{
		userinfoURL: "https://" + host + "/userinfo",
		httpClient:  &http.Client{Timeout: timeout},
		log:         logger.With("adapter", "auth0"),
	}
}

// userinfoResponse is the OIDC userinfo payload, trimmed to what we use.
type userinfoResponse struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// Verify presents the token to Auth0's userinfo endpoint and maps the
// profile to a claim. A rejected token fails with domain.ErrUnauthorized;
// upstream trouble surfaces as a plain error so callers answer 500, not 401.
func (v *Verifier) Verify(ctx context.Context, token string) (*auth.Claim, error) {
	if token == "" {
		return nil, fmt.Errorf("auth0: empty token: %w", domain.ErrUnauthorized)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("auth0: create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "auth0 userinfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("auth0: userinfo unavailable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("auth0: token rejected: %w", domain.ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		v.log.ErrorContext(ctx, "auth0 userinfo failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("auth0: userinfo status %d", resp.StatusCode)
	}

	var userinfo userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&userinfo); err != nil {
		v.log.ErrorContext(ctx, "auth0 userinfo failed", slog.String("error", "invalid json"))
		return nil, fmt.Errorf("auth0: invalid userinfo response")
	}

	if userinfo.Sub == "" || userinfo.Email == "" {
		v.log.ErrorContext(ctx, "auth0 userinfo failed", slog.String("error", "missing required fields"))
		return nil, fmt.Errorf("auth0: invalid userinfo response")
	}

	v.log.DebugContext(ctx, "auth0 userinfo success", slog.String("sub", userinfo.Sub))

	return &auth.Claim{
		Subject: userinfo.Sub,
		Email:   userinfo.Email,
		Name:    userinfo.Name,
	}, nil
}

// doWithRetry executes the request, retrying once on 5xx or network errors
// with a 500ms backoff. GET only, so there is no body to replay.
func (v *Verifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil || resp.StatusCode >= 500 {
		if resp != nil {
			resp.Body.Close()
		}

		select {
		case <-time.After(500 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		resp, err = v.httpClient.Do(req)
	}

	return resp, err
}
