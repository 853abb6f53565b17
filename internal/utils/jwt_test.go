package utils

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestSignAndVerifyToken(t *testing.T) {
	token, err := SignToken("user-1", "alice", "secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	claims, err := VerifyToken(token, "secret")
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	userID, err := GetUserIDFromClaims(claims)
	if err != nil {
		t.Fatalf("failed to extract sub: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %q", userID)
	}
	if claims["username"] != "alice" {
		t.Fatalf("expected username claim, got %v", claims["username"])
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := SignToken("user-1", "alice", "secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if _, err := VerifyToken(token, "other"); err == nil {
		t.Fatal("expected verification to fail with the wrong secret")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	token, err := SignToken("user-1", "alice", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if _, err := VerifyToken(token, "secret"); err == nil {
		t.Fatal("expected verification to fail for an expired token")
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, err := BearerToken(req); err == nil {
		t.Fatal("expected error when header is missing")
	}

	req.Header.Set("Authorization", "Token abc")
	if _, err := BearerToken(req); err == nil {
		t.Fatal("expected error for a non-Bearer scheme")
	}

	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	token, err := BearerToken(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("expected raw token, got %q", token)
	}
}
