// Package devtoken verifies locally minted HS256 tokens. It stands in for
// Auth0 in development and tests, where calling a real tenant is neither
// possible nor wanted.
package devtoken

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/survivor-league/internal/auth"
	"github.com/heartmarshall/survivor-league/internal/domain"
)

// Verifier validates HS256 dev tokens signed with a shared secret.
type Verifier struct {
	secret []byte
	log    *slog.Logger
}

// NewVerifier creates a dev token verifier.
// secret must be at least 32 characters for HS256 security.
func NewVerifier(secret string, logger *slog.Logger) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		log:    logger.With("adapter", "devtoken"),
	}
}

// devClaims carries the identity fields the resolver needs.
type devClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Verify parses and validates a dev token. Any parse or signature failure
// maps to domain.ErrUnauthorized: a bad dev token is a bad credential, not
// a server fault.
func (v *Verifier) Verify(ctx context.Context, token string) (*auth.Claim, error) {
	if token == "" {
		return nil, fmt.Errorf("devtoken: empty token: %w", domain.ErrUnauthorized)
	}

	parsed, err := jwt.ParseWithClaims(token, &devClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("devtoken: parse token: %v: %w", err, domain.ErrUnauthorized)
	}

	claims, ok := parsed.Claims.(*devClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("devtoken: invalid token claims: %w", domain.ErrUnauthorized)
	}

	if claims.Subject == "" || claims.Email == "" {
		return nil, fmt.Errorf("devtoken: token missing sub or email: %w", domain.ErrUnauthorized)
	}

	v.log.DebugContext(ctx, "dev token accepted", slog.String("sub", claims.Subject))

	return &auth.Claim{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}

// Mint creates a signed dev token. Used by tests and local tooling.
func (v *Verifier) Mint(subject, email, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := devClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
		Name:  name,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign dev token: %w", err)
	}

	return signed, nil
}
