package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/survivor-league/internal/auth"
	"github.com/heartmarshall/survivor-league/pkg/ctxutil"
)

// verifier turns a bearer token into an identity claim.
type verifier interface {
	Verify(ctx context.Context, token string) (*auth.Claim, error)
}

// Auth returns middleware that verifies the bearer token and stores the
// resulting claim in the request context. Requests without a token pass
// through anonymously; handlers that need an identity reject them when the
// claim is absent. A present but invalid token is always a 401.
func Auth(v verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			claim, err := v.Verify(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithClaim(r.Context(), *claim)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
