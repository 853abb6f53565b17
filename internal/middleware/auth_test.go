package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
)

const authTestSecret = "test-secret"

type fakeBlacklist struct {
	revoked map[string]bool
}

func (f *fakeBlacklist) IsTokenBlacklisted(_ context.Context, token string) bool {
	return f.revoked[token]
}

func authStack(blacklist TokenBlacklist) (http.Handler, *string) {
	var seenUserID string
	handler := RequireAuth(authTestSecret, blacklist)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserID(r)
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &seenUserID
}

func TestRequireAuth(t *testing.T) {
	token, err := utils.SignToken("user-1", "alice", authTestSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	t.Run("missing header", func(t *testing.T) {
		handler, _ := authStack(nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		handler, _ := authStack(nil)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 without Bearer prefix, got %d", rec.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		forged, err := utils.SignToken("user-1", "alice", "other-secret", time.Hour)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		handler, _ := authStack(nil)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for forged token, got %d", rec.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := utils.SignToken("user-1", "alice", authTestSecret, -time.Minute)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		handler, _ := authStack(nil)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for expired token, got %d", rec.Code)
		}
	})

	t.Run("revoked token", func(t *testing.T) {
		handler, _ := authStack(&fakeBlacklist{revoked: map[string]bool{token: true}})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for revoked token, got %d", rec.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		handler, seenUserID := authStack(&fakeBlacklist{revoked: map[string]bool{}})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if *seenUserID != "user-1" {
			t.Fatalf("expected user-1 in context, got %q", *seenUserID)
		}
	})
}
