package ctxutil

import (
	"context"

	"github.com/heartmarshall/survivor-league/internal/auth"
)

type ctxKey string

const (
	claimKey     ctxKey = "identity_claim"
	requestIDKey ctxKey = "request_id"
)

// WithClaim stores the verified identity claim in the context.
func WithClaim(ctx context.Context, claim auth.Claim) context.Context {
	return context.WithValue(ctx, claimKey, claim)
}

// ClaimFromCtx extracts the verified identity claim from the context.
// Returns false if the request carried no verifiable token.
func ClaimFromCtx(ctx context.Context) (auth.Claim, bool) {
	claim, ok := ctx.Value(claimKey).(auth.Claim)
	if !ok || claim.Subject == "" {
		return auth.Claim{}, false
	}
	return claim, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
