package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/george-bobby/prepify-interview-sub001/internal/credits"
	"github.com/george-bobby/prepify-interview-sub001/internal/llm"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
	"github.com/george-bobby/prepify-interview-sub001/internal/testhelpers"
)

func newResumeEnv(t *testing.T, provider *mockProvider) (*ResumeHandler, *repositories.UserRepository) {
	t.Helper()
	users := &repositories.UserRepository{DB: testhelpers.SetupTestDB(t)}
	ledger := credits.NewLedger(users, 2)
	return NewResumeHandler(provider, ledger, zap.NewNop()), users
}

const analyzeBody = `{"resumeText":"Experienced Go engineer...","targetRole":"Backend Engineer"}`

func TestAnalyzeHandler(t *testing.T) {
	handler, users := newResumeEnv(t, &mockProvider{})
	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	if err := users.CreateUser(user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	rec := performAs[*models.AnalyzeResumeRequest](user.ID, http.MethodPost, "/api/v1/resume/analyze", analyzeBody, handler.AnalyzeHandler, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	balance, _ := users.GetCredits(user.ID)
	if balance.ResumeCredits != 1 {
		t.Fatalf("expected 1 resume credit after deduction, got %d", balance.ResumeCredits)
	}
}

func TestAnalyzeHandlerInsufficientCredits(t *testing.T) {
	handler, users := newResumeEnv(t, &mockProvider{})
	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	if err := users.CreateUser(user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	users.DB.Model(user).UpdateColumn("resume_credits", 0)

	rec := performAs[*models.AnalyzeResumeRequest](user.ID, http.MethodPost, "/api/v1/resume/analyze", analyzeBody, handler.AnalyzeHandler, nil)
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", rec.Code)
	}
}

func TestAnalyzeHandlerRenewsMonthlyAllowance(t *testing.T) {
	handler, users := newResumeEnv(t, &mockProvider{})
	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	if err := users.CreateUser(user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	// exhausted last month; the analyze path renews before checking
	users.DB.Model(user).Updates(map[string]interface{}{
		"resume_credits":            0,
		"resume_credits_renewed_at": time.Now().AddDate(0, -1, 0),
	})

	rec := performAs[*models.AnalyzeResumeRequest](user.ID, http.MethodPost, "/api/v1/resume/analyze", analyzeBody, handler.AnalyzeHandler, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after renewal, got %d", rec.Code)
	}

	balance, _ := users.GetCredits(user.ID)
	if balance.ResumeCredits != 1 {
		t.Fatalf("expected renewed allowance minus one, got %d", balance.ResumeCredits)
	}
}

func TestAnalyzeHandlerProviderFailureCostsNothing(t *testing.T) {
	provider := &mockProvider{
		analyzeResumeFn: func(ctx context.Context, resumeText, targetRole string) (*models.ResumeAnalysis, error) {
			return nil, &llm.ProviderError{Provider: "mock", Code: llm.ErrCodeServiceDown, Message: "down"}
		},
	}
	handler, users := newResumeEnv(t, provider)
	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	if err := users.CreateUser(user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	rec := performAs[*models.AnalyzeResumeRequest](user.ID, http.MethodPost, "/api/v1/resume/analyze", analyzeBody, handler.AnalyzeHandler, nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	balance, _ := users.GetCredits(user.ID)
	if balance.ResumeCredits != 2 {
		t.Fatalf("expected credits untouched on provider failure, got %d", balance.ResumeCredits)
	}
}
