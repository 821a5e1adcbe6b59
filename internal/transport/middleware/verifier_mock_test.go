package middleware

import (
	"context"

	"github.com/heartmarshall/survivor-league/internal/auth"
)

var _ verifier = &verifierMock{}

type verifierMock struct {
	VerifyFunc func(ctx context.Context, token string) (*auth.Claim, error)
}

func (m *verifierMock) Verify(ctx context.Context, token string) (*auth.Claim, error) {
	if m.VerifyFunc == nil {
		panic("verifierMock.VerifyFunc: method is nil but verifier.Verify was just called")
	}
	return m.VerifyFunc(ctx, token)
}
