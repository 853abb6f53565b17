package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/george-bobby/prepify-interview-sub001/internal/cache"
	"github.com/george-bobby/prepify-interview-sub001/internal/middleware"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
	"github.com/george-bobby/prepify-interview-sub001/internal/testhelpers"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
)

const testSecret = "test-secret"

func newAuthHandler(t *testing.T) (*AuthHandler, *repositories.UserRepository, *cache.Cache) {
	t.Helper()
	users := &repositories.UserRepository{DB: testhelpers.SetupTestDB(t)}
	_, client := testhelpers.SetupTestRedis(t)
	appCache := cache.NewCache(client)
	return NewAuthHandler(users, appCache, testSecret, zap.NewNop()), users, appCache
}

func performAuth[T middleware.Validator](body string, handlerFn http.HandlerFunc) *httptest.ResponseRecorder {
	wrapped := middleware.ValidateRequest[T]()(handlerFn)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	return rec
}

func TestRegisterHandler(t *testing.T) {
	handler, users, _ := newAuthHandler(t)

	rec := performAuth[*models.RegisterRequest](`{"username":"alice","email":"alice@example.com","password":"supersecret"}`, handler.RegisterHandler)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	user, err := users.GetUserByUsername("alice")
	if err != nil {
		t.Fatalf("expected user to exist: %v", err)
	}
	if user.PasswordHash == "supersecret" {
		t.Fatalf("password must be stored hashed")
	}

	t.Run("duplicate username", func(t *testing.T) {
		rec := performAuth[*models.RegisterRequest](`{"username":"alice","email":"other@example.com","password":"supersecret"}`, handler.RegisterHandler)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec := performAuth[*models.RegisterRequest](`{"username":"alice2","email":"alice@example.com","password":"supersecret"}`, handler.RegisterHandler)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("short password", func(t *testing.T) {
		rec := performAuth[*models.RegisterRequest](`{"username":"bob","email":"bob@example.com","password":"short"}`, handler.RegisterHandler)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestLoginHandler(t *testing.T) {
	handler, users, _ := newAuthHandler(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	if err := users.CreateUser(&models.User{Username: "alice", Email: "alice@example.com", PasswordHash: string(hash)}); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	t.Run("success", func(t *testing.T) {
		rec := performAuth[*models.LoginRequest](`{"username":"alice","password":"supersecret"}`, handler.LoginHandler)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if _, err := utils.VerifyToken(resp.Token, testSecret); err != nil {
			t.Fatalf("expected a verifiable token: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := performAuth[*models.LoginRequest](`{"username":"alice","password":"wrong"}`, handler.LoginHandler)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := performAuth[*models.LoginRequest](`{"username":"nobody","password":"supersecret"}`, handler.LoginHandler)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestLogoutHandlerBlacklistsToken(t *testing.T) {
	handler, _, appCache := newAuthHandler(t)

	token, err := utils.SignToken("user-1", "alice", testSecret, tokenTTL)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.LogoutHandler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !appCache.IsTokenBlacklisted(context.Background(), token) {
		t.Fatalf("expected token to be blacklisted")
	}
}
