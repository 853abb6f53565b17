package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/george-bobby/prepify-interview-sub001/internal/cache"
	"github.com/george-bobby/prepify-interview-sub001/internal/testhelpers"
)

func TestHealthzHandler(t *testing.T) {
	handler := NewHealthHandler(nil, nil, nil)
	rec := httptest.NewRecorder()
	handler.HealthzHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyzHandlerAllHealthy(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	_, client := testhelpers.SetupTestRedis(t)
	handler := NewHealthHandler(db, cache.NewCache(client), &mockProvider{})

	rec := httptest.NewRecorder()
	handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp ReadinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if resp.Status != "ready" {
		t.Fatalf("expected ready, got %q", resp.Status)
	}
}

func TestReadyzHandlerMissingDependencies(t *testing.T) {
	handler := NewHealthHandler(nil, nil, nil)

	rec := httptest.NewRecorder()
	handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var resp ReadinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if resp.Status != "not_ready" {
		t.Fatalf("expected not_ready, got %q", resp.Status)
	}
	if resp.Checks["database"].Status != "failed" {
		t.Fatalf("expected database check to fail")
	}
}
