package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/survivor-league/internal/auth"
	"github.com/heartmarshall/survivor-league/pkg/ctxutil"
)

func TestAuth_ValidToken(t *testing.T) {
	want := auth.Claim{Subject: "auth0|member", Email: "member@example.com", Name: "Member"}
	v := &verifierMock{
		VerifyFunc: func(ctx context.Context, token string) (*auth.Claim, error) {
			if token == "valid-token" {
				return &want, nil
			}
			return nil, errors.New("invalid token")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claim, ok := ctxutil.ClaimFromCtx(r.Context())
		if !ok {
			t.Error("expected claim in context")
			return
		}
		if claim != want {
			t.Errorf("expected claim %+v, got %+v", want, claim)
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Auth(v)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	v := &verifierMock{
		VerifyFunc: func(ctx context.Context, token string) (*auth.Claim, error) {
			return nil, errors.New("invalid token")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for an invalid token")
	})

	wrapped := Auth(v)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuth_NoToken_Anonymous(t *testing.T) {
	v := &verifierMock{
		VerifyFunc: func(ctx context.Context, token string) (*auth.Claim, error) {
			t.Error("verifier should not run without a token")
			return nil, nil
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.ClaimFromCtx(r.Context()); ok {
			t.Error("expected no claim for anonymous request")
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Auth(v)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_MalformedAuthorizationHeader(t *testing.T) {
	v := &verifierMock{
		VerifyFunc: func(ctx context.Context, token string) (*auth.Claim, error) {
			t.Error("verifier should not run for a non-bearer header")
			return nil, nil
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Auth(v)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
